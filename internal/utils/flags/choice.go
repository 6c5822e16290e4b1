// Package flags provides Cobra flag values shared by execf commands.
package flags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	choicePlaceholderPrefix            = "<"
	choicePlaceholderSuffix            = ">"
	choiceSeparatorLiteral             = "|"
	choiceUsageEmptyTemplate           = "`%s`"
	choiceUsageFullTemplate            = "`%s` %s"
	choiceValueTypeConstant            = "choice"
	unsupportedChoiceTemplateConstant  = "%w %q (expected one of %s)"
	choiceDescriptionSeparatorConstant = ", "
)

// ErrUnsupportedChoice is returned when a flag value is not among its choices.
var ErrUnsupportedChoice = errors.New("unsupported choice")

// ChoiceFlagDefinition describes a flag restricted to a fixed set of values.
type ChoiceFlagDefinition struct {
	Name          string
	Shorthand     string
	Usage         string
	DefaultChoice string
	Choices       []string
}

// ChoiceValue implements pflag.Value for case-insensitive enumerated flags.
type ChoiceValue struct {
	selectedChoice string
	choices        []string
}

// NewChoiceValue builds a ChoiceValue preset to defaultChoice.
func NewChoiceValue(defaultChoice string, choices []string) *ChoiceValue {
	return &ChoiceValue{
		selectedChoice: strings.ToLower(strings.TrimSpace(defaultChoice)),
		choices:        normalizeChoices(choices),
	}
}

// BindChoiceFlag registers definition on flagSet and returns its value holder.
func BindChoiceFlag(flagSet *pflag.FlagSet, definition ChoiceFlagDefinition) *ChoiceValue {
	value := NewChoiceValue(definition.DefaultChoice, definition.Choices)
	if flagSet == nil || len(definition.Name) == 0 {
		return value
	}

	usage := FormatChoiceUsage(definition.DefaultChoice, definition.Choices, definition.Usage)
	if len(definition.Shorthand) > 0 {
		flagSet.VarP(value, definition.Name, definition.Shorthand, usage)
		return value
	}
	flagSet.Var(value, definition.Name, usage)
	return value
}

// String returns the selected choice.
func (value *ChoiceValue) String() string {
	if value == nil {
		return ""
	}
	return value.selectedChoice
}

// Set selects rawChoice when it matches one of the configured choices.
func (value *ChoiceValue) Set(rawChoice string) error {
	normalizedChoice := strings.ToLower(strings.TrimSpace(rawChoice))
	for _, choice := range value.choices {
		if choice == normalizedChoice {
			value.selectedChoice = normalizedChoice
			return nil
		}
	}
	return fmt.Errorf(unsupportedChoiceTemplateConstant, ErrUnsupportedChoice, rawChoice, strings.Join(value.choices, choiceDescriptionSeparatorConstant))
}

// Type names the value kind in generated help.
func (value *ChoiceValue) Type() string {
	return choiceValueTypeConstant
}

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := buildChoicePlaceholder(defaultChoice, choices)
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

func buildChoicePlaceholder(defaultChoice string, choices []string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	normalizedChoices := normalizeChoices(choices)
	highlightedChoices := make([]string, 0, len(normalizedChoices))
	for _, choice := range normalizedChoices {
		if choice == normalizedDefault {
			highlightedChoices = append(highlightedChoices, strings.ToUpper(choice))
			continue
		}
		highlightedChoices = append(highlightedChoices, choice)
	}
	return choicePlaceholderPrefix + strings.Join(highlightedChoices, choiceSeparatorLiteral) + choicePlaceholderSuffix
}

// normalizeChoices lowercases and trims choices, dropping blanks and duplicates.
func normalizeChoices(choices []string) []string {
	normalized := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		normalizedChoice := strings.ToLower(strings.TrimSpace(choice))
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}
		normalized = append(normalized, normalizedChoice)
		seen[normalizedChoice] = struct{}{}
	}

	return normalized
}
