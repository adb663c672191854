package utils

import "reflect"

// ColumnList builds the list of column names of a db model struct from its
// "db" tags, in declaration order. Embedded structs are flattened.
func ColumnList[T any]() []string {
	var dbModel T
	return columnsOfType(reflect.TypeOf(dbModel))
}

func columnsOfType(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			columns = append(columns, columnsOfType(field.Type)...)
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, tag)
	}
	return columns
}
