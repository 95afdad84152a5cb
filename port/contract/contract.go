package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a behavioural specification of a role interface, also known as "contract".
//
// Any expectation a consumer has towards a supplier of an interface should be defined in a contract,
// so every implementation can be verified against the same expectations.
// Keep contracts at high level and focus on the expected behaviour,
// instead of going into implementation details.
type Contract interface {
	testcase.Suite
	// Test asserts the behavioural requirements against a supplier implementation.
	Test(*testing.T)
	// Benchmark measures the performance aspects that matter for the consumer.
	Benchmark(*testing.B)
}
