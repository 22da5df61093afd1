package constants

const (
	AppName   = "txsim"
	EnvPrefix = "TXSIM"
)

const (
	// Input header fields
	FieldType   = "type"
	FieldClient = "client"
	FieldTx     = "tx"
	FieldAmount = "amount"
)

const (
	// Output formats
	FormatCSV   = "csv"
	FormatTable = "table"
)
