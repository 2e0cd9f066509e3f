package ports

type OperationRecorder interface {
	ObserveOperation(operation string, err error)
	ObserveCompensation(ok bool)
}
