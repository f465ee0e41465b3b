package compare

import "reflect"

// IsMutable 是尽力而为的可变性判断：拿不准时按可变处理。
//
//   - nil、布尔、数值、字符串：不可变
//   - 数组、结构体：按值拷贝，元素/字段全部不可变时视为不可变
//   - 切片、map、指针、channel、函数、interface 字段等：可变
//
// 判断只看类型，不读取也不修改值本身。
func IsMutable(v any) bool {
	if v == nil {
		return false
	}
	return mutableType(reflect.TypeOf(v), 0)
}

// 结构体嵌套过深时放弃判断（按可变处理）
const maxTypeDepth = 16

func mutableType(t reflect.Type, depth int) bool {
	if depth > maxTypeDepth {
		return true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return false
	case reflect.Array:
		return mutableType(t.Elem(), depth+1)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if mutableType(t.Field(i).Type, depth+1) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
