// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package layout -destination ./mock_layout.go -source=./interfaces.go
//

// Package layout is a generated GoMock package.
package layout

import (
	context "context"
	http "net/http"
	reflect "reflect"

	types "github.com/canonical/app-builder/internal/types"
	gomock "go.uber.org/mock/gomock"
)

// MockServiceInterface is a mock of ServiceInterface interface.
type MockServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockServiceInterfaceMockRecorder is the mock recorder for MockServiceInterface.
type MockServiceInterfaceMockRecorder struct {
	mock *MockServiceInterface
}

// NewMockServiceInterface creates a new mock instance.
func NewMockServiceInterface(ctrl *gomock.Controller) *MockServiceInterface {
	mock := &MockServiceInterface{ctrl: ctrl}
	mock.recorder = &MockServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockServiceInterface) EXPECT() *MockServiceInterfaceMockRecorder {
	return m.recorder
}

// ApplyDrag mocks base method.
func (m *MockServiceInterface) ApplyDrag(ctx context.Context, organizationID, appVersionID string, breakpoint Breakpoint, records []DragRecord) ([]*types.WidgetLayout, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyDrag", ctx, organizationID, appVersionID, breakpoint, records)
	ret0, _ := ret[0].([]*types.WidgetLayout)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyDrag indicates an expected call of ApplyDrag.
func (mr *MockServiceInterfaceMockRecorder) ApplyDrag(ctx, organizationID, appVersionID, breakpoint, records any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyDrag", reflect.TypeOf((*MockServiceInterface)(nil).ApplyDrag), ctx, organizationID, appVersionID, breakpoint, records)
}

// ApplyResize mocks base method.
func (m *MockServiceInterface) ApplyResize(ctx context.Context, organizationID, appVersionID string, breakpoint Breakpoint, records []ResizeRecord) ([]*types.WidgetLayout, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyResize", ctx, organizationID, appVersionID, breakpoint, records)
	ret0, _ := ret[0].([]*types.WidgetLayout)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyResize indicates an expected call of ApplyResize.
func (mr *MockServiceInterfaceMockRecorder) ApplyResize(ctx, organizationID, appVersionID, breakpoint, records any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyResize", reflect.TypeOf((*MockServiceInterface)(nil).ApplyResize), ctx, organizationID, appVersionID, breakpoint, records)
}

// ListLayouts mocks base method.
func (m *MockServiceInterface) ListLayouts(ctx context.Context, organizationID, appVersionID string, breakpoint Breakpoint) ([]*types.WidgetLayout, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListLayouts", ctx, organizationID, appVersionID, breakpoint)
	ret0, _ := ret[0].([]*types.WidgetLayout)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListLayouts indicates an expected call of ListLayouts.
func (mr *MockServiceInterfaceMockRecorder) ListLayouts(ctx, organizationID, appVersionID, breakpoint any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListLayouts", reflect.TypeOf((*MockServiceInterface)(nil).ListLayouts), ctx, organizationID, appVersionID, breakpoint)
}

// MockStorageInterface is a mock of StorageInterface interface.
type MockStorageInterface struct {
	ctrl     *gomock.Controller
	recorder *MockStorageInterfaceMockRecorder
	isgomock struct{}
}

// MockStorageInterfaceMockRecorder is the mock recorder for MockStorageInterface.
type MockStorageInterfaceMockRecorder struct {
	mock *MockStorageInterface
}

// NewMockStorageInterface creates a new mock instance.
func NewMockStorageInterface(ctrl *gomock.Controller) *MockStorageInterface {
	mock := &MockStorageInterface{ctrl: ctrl}
	mock.recorder = &MockStorageInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorageInterface) EXPECT() *MockStorageInterfaceMockRecorder {
	return m.recorder
}

// GetAppVersionOrganization mocks base method.
func (m *MockStorageInterface) GetAppVersionOrganization(ctx context.Context, appVersionID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAppVersionOrganization", ctx, appVersionID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAppVersionOrganization indicates an expected call of GetAppVersionOrganization.
func (mr *MockStorageInterfaceMockRecorder) GetAppVersionOrganization(ctx, appVersionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAppVersionOrganization", reflect.TypeOf((*MockStorageInterface)(nil).GetAppVersionOrganization), ctx, appVersionID)
}

// ListWidgetLayouts mocks base method.
func (m *MockStorageInterface) ListWidgetLayouts(ctx context.Context, organizationID, appVersionID, breakpoint string) ([]*types.WidgetLayout, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListWidgetLayouts", ctx, organizationID, appVersionID, breakpoint)
	ret0, _ := ret[0].([]*types.WidgetLayout)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListWidgetLayouts indicates an expected call of ListWidgetLayouts.
func (mr *MockStorageInterfaceMockRecorder) ListWidgetLayouts(ctx, organizationID, appVersionID, breakpoint any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListWidgetLayouts", reflect.TypeOf((*MockStorageInterface)(nil).ListWidgetLayouts), ctx, organizationID, appVersionID, breakpoint)
}

// UpsertWidgetLayouts mocks base method.
func (m *MockStorageInterface) UpsertWidgetLayouts(ctx context.Context, layouts []*types.WidgetLayout) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertWidgetLayouts", ctx, layouts)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertWidgetLayouts indicates an expected call of UpsertWidgetLayouts.
func (mr *MockStorageInterfaceMockRecorder) UpsertWidgetLayouts(ctx, layouts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertWidgetLayouts", reflect.TypeOf((*MockStorageInterface)(nil).UpsertWidgetLayouts), ctx, layouts)
}

// MockTxInterface is a mock of TxInterface interface.
type MockTxInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTxInterfaceMockRecorder
	isgomock struct{}
}

// MockTxInterfaceMockRecorder is the mock recorder for MockTxInterface.
type MockTxInterfaceMockRecorder struct {
	mock *MockTxInterface
}

// NewMockTxInterface creates a new mock instance.
func NewMockTxInterface(ctrl *gomock.Controller) *MockTxInterface {
	mock := &MockTxInterface{ctrl: ctrl}
	mock.recorder = &MockTxInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxInterface) EXPECT() *MockTxInterfaceMockRecorder {
	return m.recorder
}

// WithTx mocks base method.
func (m *MockTxInterface) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockTxInterfaceMockRecorder) WithTx(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockTxInterface)(nil).WithTx), ctx, fn)
}

// MockCommitterInterface is a mock of CommitterInterface interface.
type MockCommitterInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCommitterInterfaceMockRecorder
	isgomock struct{}
}

// MockCommitterInterfaceMockRecorder is the mock recorder for MockCommitterInterface.
type MockCommitterInterfaceMockRecorder struct {
	mock *MockCommitterInterface
}

// NewMockCommitterInterface creates a new mock instance.
func NewMockCommitterInterface(ctrl *gomock.Controller) *MockCommitterInterface {
	mock := &MockCommitterInterface{ctrl: ctrl}
	mock.recorder = &MockCommitterInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCommitterInterface) EXPECT() *MockCommitterInterfaceMockRecorder {
	return m.recorder
}

// CommitDrag mocks base method.
func (m *MockCommitterInterface) CommitDrag(ctx context.Context, records []DragRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CommitDrag", ctx, records)
	ret0, _ := ret[0].(error)
	return ret0
}

// CommitDrag indicates an expected call of CommitDrag.
func (mr *MockCommitterInterfaceMockRecorder) CommitDrag(ctx, records any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CommitDrag", reflect.TypeOf((*MockCommitterInterface)(nil).CommitDrag), ctx, records)
}

// CommitResize mocks base method.
func (m *MockCommitterInterface) CommitResize(ctx context.Context, records []ResizeRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CommitResize", ctx, records)
	ret0, _ := ret[0].(error)
	return ret0
}

// CommitResize indicates an expected call of CommitResize.
func (mr *MockCommitterInterfaceMockRecorder) CommitResize(ctx, records any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CommitResize", reflect.TypeOf((*MockCommitterInterface)(nil).CommitResize), ctx, records)
}

// MockRefresherInterface is a mock of RefresherInterface interface.
type MockRefresherInterface struct {
	ctrl     *gomock.Controller
	recorder *MockRefresherInterfaceMockRecorder
	isgomock struct{}
}

// MockRefresherInterfaceMockRecorder is the mock recorder for MockRefresherInterface.
type MockRefresherInterfaceMockRecorder struct {
	mock *MockRefresherInterface
}

// NewMockRefresherInterface creates a new mock instance.
func NewMockRefresherInterface(ctrl *gomock.Controller) *MockRefresherInterface {
	mock := &MockRefresherInterface{ctrl: ctrl}
	mock.recorder = &MockRefresherInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRefresherInterface) EXPECT() *MockRefresherInterfaceMockRecorder {
	return m.recorder
}

// Refresh mocks base method.
func (m *MockRefresherInterface) Refresh() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Refresh")
}

// Refresh indicates an expected call of Refresh.
func (mr *MockRefresherInterfaceMockRecorder) Refresh() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Refresh", reflect.TypeOf((*MockRefresherInterface)(nil).Refresh))
}

// MockAuthenticatorInterface is a mock of AuthenticatorInterface interface.
type MockAuthenticatorInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthenticatorInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthenticatorInterfaceMockRecorder is the mock recorder for MockAuthenticatorInterface.
type MockAuthenticatorInterfaceMockRecorder struct {
	mock *MockAuthenticatorInterface
}

// NewMockAuthenticatorInterface creates a new mock instance.
func NewMockAuthenticatorInterface(ctrl *gomock.Controller) *MockAuthenticatorInterface {
	mock := &MockAuthenticatorInterface{ctrl: ctrl}
	mock.recorder = &MockAuthenticatorInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthenticatorInterface) EXPECT() *MockAuthenticatorInterfaceMockRecorder {
	return m.recorder
}

// Authenticate mocks base method.
func (m *MockAuthenticatorInterface) Authenticate() func(http.Handler) http.Handler {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Authenticate")
	ret0, _ := ret[0].(func(http.Handler) http.Handler)
	return ret0
}

// Authenticate indicates an expected call of Authenticate.
func (mr *MockAuthenticatorInterfaceMockRecorder) Authenticate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Authenticate", reflect.TypeOf((*MockAuthenticatorInterface)(nil).Authenticate))
}
