package shell

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	integerBaseConstant             = 10
	floatFormatConstant             = 'f'
	floatPrecisionDefaultConstant   = -1
	float32BitSizeConstant          = 32
	float64BitSizeConstant          = 64
	templateVerbMarkerConstant      = '%'
	templateFlagCharactersConstant  = "+-# 0123456789."
	templateLeftAlignFlagConstant   = "-"
	templateZeroPaddingFlagConstant = '0'
)

// coerceScalar converts a scalar argument into its string form. Named types are
// accepted when their underlying kind is scalar.
func coerceScalar(argument any) (string, bool) {
	value := reflect.ValueOf(argument)
	switch value.Kind() {
	case reflect.String:
		return value.String(), true
	case reflect.Bool:
		return strconv.FormatBool(value.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), integerBaseConstant), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(value.Uint(), integerBaseConstant), true
	case reflect.Float32:
		return strconv.FormatFloat(value.Float(), floatFormatConstant, floatPrecisionDefaultConstant, float32BitSizeConstant), true
	case reflect.Float64:
		return strconv.FormatFloat(value.Float(), floatFormatConstant, floatPrecisionDefaultConstant, float64BitSizeConstant), true
	default:
		return "", false
	}
}

// coerceArguments converts every argument or reports the first non-scalar one.
func coerceArguments(arguments []any) ([]string, error) {
	coerced := make([]string, 0, len(arguments))
	for argumentIndex, argument := range arguments {
		text, isScalar := coerceScalar(argument)
		if !isScalar {
			return nil, InvalidArgumentError{Reason: fmt.Sprintf(nonScalarArgumentReasonTemplateConstant, argumentIndex, argument)}
		}
		coerced = append(coerced, text)
	}
	return coerced, nil
}

// validateTemplate checks that argTemplate consumes exactly argumentCount values
// through %s or %v verbs. Literal %% sequences are permitted. A verb may carry
// only '-' and a width: padding with spaces keeps a quoted word intact, while
// precision, '#', '+', ' ' and '0' would rewrite it.
func validateTemplate(argTemplate string, argumentCount int) error {
	verbCount := 0
	for index := 0; index < len(argTemplate); index++ {
		if argTemplate[index] != templateVerbMarkerConstant {
			continue
		}
		index++
		directiveStart := index
		for index < len(argTemplate) && strings.IndexByte(templateFlagCharactersConstant, argTemplate[index]) >= 0 {
			index++
		}
		if index >= len(argTemplate) {
			return InvalidArgumentError{Reason: fmt.Sprintf(unterminatedTemplateVerbReasonTemplateConstant, argTemplate)}
		}
		switch argTemplate[index] {
		case templateVerbMarkerConstant:
		case 's', 'v':
			if directive := argTemplate[directiveStart:index]; !isPaddingDirective(directive) {
				return InvalidArgumentError{Reason: fmt.Sprintf(unsupportedTemplateDirectiveReasonTemplateConstant, argTemplate, directive)}
			}
			verbCount++
		default:
			return InvalidArgumentError{Reason: fmt.Sprintf(unsupportedTemplateVerbReasonTemplateConstant, argTemplate, rune(argTemplate[index]))}
		}
	}

	if verbCount != argumentCount {
		return InvalidArgumentError{Reason: fmt.Sprintf(argumentCountMismatchReasonTemplateConstant, argTemplate, verbCount, argumentCount)}
	}
	return nil
}

// isPaddingDirective accepts any number of '-' flags followed by an optional
// width that does not start with '0'.
func isPaddingDirective(directive string) bool {
	width := strings.TrimLeft(directive, templateLeftAlignFlagConstant)
	if len(width) == 0 {
		return true
	}
	if width[0] == templateZeroPaddingFlagConstant {
		return false
	}
	for index := 0; index < len(width); index++ {
		if width[index] < '0' || width[index] > '9' {
			return false
		}
	}
	return true
}
