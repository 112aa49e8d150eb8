// Package mocks provides centralized mock implementations for testing.
//
// Store mocks are built on testify's mock.Mock and are driven with On(...)
// expectations. Service mocks use function fields with default return values
// and record every call for later assertions.
//
// Usage:
//
//	import "github.com/keshavkumar4699/cloro-questions/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    reviews := &mocks.MockReviewService{
//	        Err: store.ErrQuestionNotFound,
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package, name the file after the interface
// being mocked and assert interface compliance with a blank variable.
package mocks
