// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package authorization is a generated GoMock package.
package authorization

import (
	context "context"
	reflect "reflect"

	openfga "github.com/openfga/go-sdk"
	gomock "go.uber.org/mock/gomock"
)

// MockAuthzClientInterface is a mock of AuthzClientInterface interface.
type MockAuthzClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthzClientInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthzClientInterfaceMockRecorder is the mock recorder for MockAuthzClientInterface.
type MockAuthzClientInterfaceMockRecorder struct {
	mock *MockAuthzClientInterface
}

// NewMockAuthzClientInterface creates a new mock instance.
func NewMockAuthzClientInterface(ctrl *gomock.Controller) *MockAuthzClientInterface {
	mock := &MockAuthzClientInterface{ctrl: ctrl}
	mock.recorder = &MockAuthzClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthzClientInterface) EXPECT() *MockAuthzClientInterfaceMockRecorder {
	return m.recorder
}

// CompareModel mocks base method.
func (m *MockAuthzClientInterface) CompareModel(arg0 context.Context, arg1 openfga.AuthorizationModel) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompareModel", arg0, arg1)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompareModel indicates an expected call of CompareModel.
func (mr *MockAuthzClientInterfaceMockRecorder) CompareModel(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompareModel", reflect.TypeOf((*MockAuthzClientInterface)(nil).CompareModel), arg0, arg1)
}

// WriteTuple mocks base method.
func (m *MockAuthzClientInterface) WriteTuple(ctx context.Context, user, relation, object string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteTuple", ctx, user, relation, object)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteTuple indicates an expected call of WriteTuple.
func (mr *MockAuthzClientInterfaceMockRecorder) WriteTuple(ctx, user, relation, object any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteTuple", reflect.TypeOf((*MockAuthzClientInterface)(nil).WriteTuple), ctx, user, relation, object)
}
