package steps

// MsgCartNotUpdated is reported when the cart does not show the expected quantity
const MsgCartNotUpdated = "Cart not updated correctly"

// Result is the outcome of a verification step
type Result struct {
	Passed  bool
	Message string
}

// Pass returns a passing result
func Pass(msg string) Result {
	return Result{Passed: true, Message: msg}
}

// Fail returns a failing result carrying msg
func Fail(msg string) Result {
	return Result{Passed: false, Message: msg}
}

// Err converts a failing result into the error reported to the feature runner
func (r Result) Err() error {
	if r.Passed {
		return nil
	}
	return &AssertionError{Message: r.Message}
}

// AssertionError is a failed expectation, as opposed to a browser or page failure
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}
