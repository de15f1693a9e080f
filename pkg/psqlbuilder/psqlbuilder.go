// Package psqlbuilder обертка над squirrel с плейсхолдерами PostgreSQL ($1, $2, ...)
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает построение SELECT-запроса
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert начинает построение INSERT-запроса
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update начинает построение UPDATE-запроса
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete начинает построение DELETE-запроса
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
