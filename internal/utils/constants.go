package utils

// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
const LoggerInitializationFailedMessageFormat = "initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal errors returned by the CLI.
const ApplicationExecutionFailedMessage = "codesqueeze failed"
