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

	// Database errors
	DBConnectionError
	DBUnknownDriverError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBTransactionError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Populate errors
	PopulateSourcesConfigError
	PopulateSourceNotFoundError
	PopulateSourceReadError
	PopulateQuarantineError

	// Mapping errors
	MapCoercionError
	MapCardinalityError

	// Load errors
	LoadTableError
	LoadStagedError

	// Query errors
	QueryArgsError
	QueryTopNError
	QueryOutputError
)
