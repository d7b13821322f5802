// Package results defines the generic success/failure envelope returned by
// service operations. Business failures travel as Failure payloads; the error
// return is reserved for infrastructure faults.
package results

// OperationResult carries either a success or a failure payload.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

func (r OperationResult[S, F]) IsSuccess() bool {
	return r.Success != nil
}

func (r OperationResult[S, F]) IsFailure() bool {
	return r.Failure != nil
}

// Success wraps a success payload.
func Success[S any, F any](payload S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &payload}
}

// Failure wraps a failure payload.
func Failure[S any, F any](payload F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &payload}
}
