package configuration

import (
	"fmt"
	"reflect"
	"unicode"

	"github.com/spf13/pflag"
)

// NewUnsortedFlagSet returns a FlagSet that prints its flags in the order of their definition.
func NewUnsortedFlagSet(name string, errorHandling pflag.ErrorHandling) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, errorHandling)
	flagSet.SortFlags = false

	return flagSet
}

// BindParameters defines a flag in the given FlagSet for every field of the struct that pointerToStruct points to, and
// binds the field to it. The current field values are used as defaults.
//
// The parameter names are built as namespace.fieldName; the name can be overridden with a name tag, and the usage is
// taken from the usage tag. Nested structs are bound recursively as namespace.fieldName.nestedField.
func BindParameters(flagSet *pflag.FlagSet, pointerToStruct interface{}, namespace string) {
	val := reflect.ValueOf(pointerToStruct).Elem()
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)
		if !typeField.IsExported() {
			continue
		}

		name := namespace + "."
		if tagName, exists := typeField.Tag.Lookup("name"); exists {
			name += tagName
		} else {
			name += lowerCamelCase(typeField.Name)
		}
		usage := typeField.Tag.Get("usage")

		switch target := valueField.Addr().Interface().(type) {
		case *bool:
			flagSet.BoolVar(target, name, *target, usage)
		case *int:
			flagSet.IntVar(target, name, *target, usage)
		case *int64:
			flagSet.Int64Var(target, name, *target, usage)
		case *uint:
			flagSet.UintVar(target, name, *target, usage)
		case *uint64:
			flagSet.Uint64Var(target, name, *target, usage)
		case *string:
			flagSet.StringVar(target, name, *target, usage)
		case *[]string:
			flagSet.StringSliceVar(target, name, *target, usage)
		case *[]int:
			flagSet.IntSliceVar(target, name, *target, usage)
		default:
			if valueField.Kind() != reflect.Struct {
				panic(fmt.Sprintf("unsupported parameter type %s for %s", typeField.Type, name))
			}

			BindParameters(flagSet, target, name)
		}
	}
}

func lowerCamelCase(str string) string {
	runes := []rune(str)
	runeCount := len(runes)

	if runeCount == 0 || unicode.IsLower(runes[0]) {
		return str
	}

	runes[0] = unicode.ToLower(runes[0])
	if runeCount == 1 || unicode.IsLower(runes[1]) {
		return string(runes)
	}

	for i := 1; i < runeCount; i++ {
		if i+1 < runeCount && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
