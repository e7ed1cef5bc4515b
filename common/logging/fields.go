package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"

	FieldAccount     = "account"
	FieldCaller      = "caller"
	FieldCallee      = "callee"
	FieldBeneficiary = "beneficiary"

	FieldStorageKey = "storageKey"
	FieldValueSize  = "valueSize"

	FieldAmount  = "amount"
	FieldBalance = "balance"

	FieldCallFlags     = "callFlags"
	FieldEntranceCount = "entranceCount"

	FieldFuncId     = "funcId"
	FieldStatusCode = "statusCode"

	FieldTopicCount = "topicCount"

	FieldBlockNumber    = "blockNumber"
	FieldBlockTimestamp = "blockTimestamp"
)
