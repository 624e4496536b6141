package starlarkres

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"go.starlark.net/syntax"
)

// structuralCompare orders two records of the same dynamic type by walking
// their fields in declaration order. Strings compare lexically, byte slices
// bytewise, booleans with false before true, and nested structs recursively.
// The result is -1, 0, or +1.
func structuralCompare(a, b any) int {
	return compareReflect(reflect.ValueOf(a), reflect.ValueOf(b))
}

func compareReflect(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Bool:
		return compareBools(a.Bool(), b.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return compareInts(a.Int(), b.Int())
	case reflect.Slice:
		if a.Type().Elem().Kind() == reflect.Uint8 {
			return bytes.Compare(a.Bytes(), b.Bytes())
		}
		panic(fmt.Sprintf("structural compare: unsupported slice type %s", a.Type()))
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if c := compareReflect(a.Field(i), b.Field(i)); c != 0 {
				return c
			}
		}
		return 0
	default:
		// Resource records only contain the kinds above; anything else is a
		// programmer error in a new record definition.
		panic(fmt.Sprintf("structural compare: unsupported kind %s", a.Kind()))
	}
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareOp resolves a three-way comparison result against a Starlark
// comparison operator.
func compareOp(op syntax.Token, cmp int) (bool, error) {
	switch op {
	case syntax.EQL:
		return cmp == 0, nil
	case syntax.NEQ:
		return cmp != 0, nil
	case syntax.LT:
		return cmp < 0, nil
	case syntax.LE:
		return cmp <= 0, nil
	case syntax.GT:
		return cmp > 0, nil
	case syntax.GE:
		return cmp >= 0, nil
	default:
		return false, fmt.Errorf("unexpected comparison operator %s", op)
	}
}
