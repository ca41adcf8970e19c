// Package fuzztests houses Go fuzz harnesses for the cglogic front end
// (source -> lexer -> parser -> translator). They guard against panics,
// hangs and broken span invariants on arbitrary input.
//
// Назначение: прогонять байты через FileSet, лексер и парсер обеих нотаций.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.

package fuzztests
