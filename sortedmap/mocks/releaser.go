// Package mocksortedmap contains gomock doubles for sortedmap interfaces.
package mocksortedmap

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockReleaser is a mock of Releaser interface.
type MockReleaser[V any] struct {
	ctrl     *gomock.Controller
	recorder *MockReleaserMockRecorder[V]
}

// MockReleaserMockRecorder is the mock recorder for MockReleaser.
type MockReleaserMockRecorder[V any] struct {
	mock *MockReleaser[V]
}

// NewMockReleaser creates a new mock instance.
func NewMockReleaser[V any](ctrl *gomock.Controller) *MockReleaser[V] {
	mock := &MockReleaser[V]{ctrl: ctrl}
	mock.recorder = &MockReleaserMockRecorder[V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReleaser[V]) EXPECT() *MockReleaserMockRecorder[V] {
	return m.recorder
}

// Release mocks base method.
func (m *MockReleaser[V]) Release(value V) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Release", value)
}

// Release indicates an expected call of Release.
func (mr *MockReleaserMockRecorder[V]) Release(value interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Release", reflect.TypeOf((*MockReleaser[V])(nil).Release), value)
}
