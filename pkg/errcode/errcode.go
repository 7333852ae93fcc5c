package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	CorrectionsConfigError
	OverridesConfigError

	// Input errors
	InputOpenError
	InputParseError
	InputEmptyError

	// Registry errors
	RegistryRequestError
	RegistryResponseError
	RegistryStatusError
	RegistryCacheError

	// Resolver errors
	ResolveCodeAssignError
	ResolveOutputError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBDropTableError
	DBInsertError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaCollationError

	// SQLite errors
	SQLiteOpenError
	SQLiteWriteError
)
