package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	copyFlagName                = "copy"
	copyFlagShorthand           = "c"
	copyFlagTypeName            = "copy"
	invalidCopyFlagValueMessage = "invalid copy flag value '%s'"
)

type copyFlagValue struct {
	target *bool
}

func (value *copyFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf(invalidCopyFlagValueMessage, input)
	}
	booleanValue, ok := parseBooleanLiteral(input)
	if !ok {
		return fmt.Errorf(invalidCopyFlagValueMessage, input)
	}
	*value.target = booleanValue
	return nil
}

func (value *copyFlagValue) String() string {
	if value == nil || value.target == nil {
		return "false"
	}
	if *value.target {
		return "true"
	}
	return "false"
}

func (value *copyFlagValue) Type() string {
	return copyFlagTypeName
}

func registerCopyFlag(flagSet *pflag.FlagSet, target *bool) {
	if flagSet == nil || target == nil {
		return
	}
	*target = false
	flagSet.VarP(&copyFlagValue{target: target}, copyFlagName, copyFlagShorthand, copyFlagDescription)
	if lookup := flagSet.Lookup(copyFlagName); lookup != nil {
		lookup.NoOptDefVal = "true"
	}
}

// normalizeCopyFlagArguments folds "--copy no" and "-c yes" into their "=" forms.
// Any other argument after the flag is left alone so it can serve as PROJECT_DIR.
func normalizeCopyFlagArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	index := 0
	for index < len(arguments) {
		current := arguments[index]
		if current == "--" {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		if current == "--"+copyFlagName || current == "-"+copyFlagShorthand {
			nextIndex := index + 1
			if nextIndex < len(arguments) {
				nextValue := strings.ToLower(strings.TrimSpace(arguments[nextIndex]))
				if booleanValue, separated := separatedBooleanLiterals[nextValue]; separated {
					normalized = append(normalized, fmt.Sprintf("--%s=%t", copyFlagName, booleanValue))
					index += 2
					continue
				}
			}
			normalized = append(normalized, fmt.Sprintf("--%s=true", copyFlagName))
			index++
			continue
		}
		normalized = append(normalized, current)
		index++
	}
	return normalized
}
