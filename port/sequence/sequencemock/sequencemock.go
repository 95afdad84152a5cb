// Package sequencemock contains gomock doubles for the sequence capability interfaces.
package sequencemock

import (
	"reflect"

	"github.com/golang/mock/gomock"

	"go.llib.dev/singleton/port/sequence"
)

var (
	_ sequence.Producer[any]     = (*MockProducer[any])(nil)
	_ sequence.BackProducer[any] = (*MockBackProducer[any])(nil)
)

// MockProducer is a mock of the sequence.Producer interface.
type MockProducer[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockProducerMockRecorder[T]
}

// MockProducerMockRecorder is the mock recorder for MockProducer.
type MockProducerMockRecorder[T any] struct {
	mock *MockProducer[T]
}

// NewMockProducer creates a new mock instance.
func NewMockProducer[T any](ctrl *gomock.Controller) *MockProducer[T] {
	mock := &MockProducer[T]{ctrl: ctrl}
	mock.recorder = &MockProducerMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProducer[T]) EXPECT() *MockProducerMockRecorder[T] {
	return m.recorder
}

// Next mocks base method.
func (m *MockProducer[T]) Next() (T, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockProducerMockRecorder[T]) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockProducer[T])(nil).Next))
}

// MockBackProducer is a mock of the sequence.BackProducer interface.
type MockBackProducer[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockBackProducerMockRecorder[T]
}

// MockBackProducerMockRecorder is the mock recorder for MockBackProducer.
type MockBackProducerMockRecorder[T any] struct {
	mock *MockBackProducer[T]
}

// NewMockBackProducer creates a new mock instance.
func NewMockBackProducer[T any](ctrl *gomock.Controller) *MockBackProducer[T] {
	mock := &MockBackProducer[T]{ctrl: ctrl}
	mock.recorder = &MockBackProducerMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBackProducer[T]) EXPECT() *MockBackProducerMockRecorder[T] {
	return m.recorder
}

// Next mocks base method.
func (m *MockBackProducer[T]) Next() (T, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockBackProducerMockRecorder[T]) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockBackProducer[T])(nil).Next))
}

// NextBack mocks base method.
func (m *MockBackProducer[T]) NextBack() (T, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextBack")
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// NextBack indicates an expected call of NextBack.
func (mr *MockBackProducerMockRecorder[T]) NextBack() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextBack", reflect.TypeOf((*MockBackProducer[T])(nil).NextBack))
}
