// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go
//

// Package authentication is a generated GoMock package.
package authentication

import (
	context "context"
	reflect "reflect"
	time "time"

	types "github.com/canonical/app-builder/internal/types"
	gomock "go.uber.org/mock/gomock"
)

// MockTokenSignerInterface is a mock of TokenSignerInterface interface.
type MockTokenSignerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenSignerInterfaceMockRecorder
	isgomock struct{}
}

// MockTokenSignerInterfaceMockRecorder is the mock recorder for MockTokenSignerInterface.
type MockTokenSignerInterfaceMockRecorder struct {
	mock *MockTokenSignerInterface
}

// NewMockTokenSignerInterface creates a new mock instance.
func NewMockTokenSignerInterface(ctrl *gomock.Controller) *MockTokenSignerInterface {
	mock := &MockTokenSignerInterface{ctrl: ctrl}
	mock.recorder = &MockTokenSignerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenSignerInterface) EXPECT() *MockTokenSignerInterfaceMockRecorder {
	return m.recorder
}

// Sign mocks base method.
func (m *MockTokenSignerInterface) Sign(ctx context.Context, claims *SessionClaims) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sign", ctx, claims)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Sign indicates an expected call of Sign.
func (mr *MockTokenSignerInterfaceMockRecorder) Sign(ctx, claims any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sign", reflect.TypeOf((*MockTokenSignerInterface)(nil).Sign), ctx, claims)
}

// MockTokenVerifierInterface is a mock of TokenVerifierInterface interface.
type MockTokenVerifierInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenVerifierInterfaceMockRecorder
	isgomock struct{}
}

// MockTokenVerifierInterfaceMockRecorder is the mock recorder for MockTokenVerifierInterface.
type MockTokenVerifierInterfaceMockRecorder struct {
	mock *MockTokenVerifierInterface
}

// NewMockTokenVerifierInterface creates a new mock instance.
func NewMockTokenVerifierInterface(ctrl *gomock.Controller) *MockTokenVerifierInterface {
	mock := &MockTokenVerifierInterface{ctrl: ctrl}
	mock.recorder = &MockTokenVerifierInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenVerifierInterface) EXPECT() *MockTokenVerifierInterfaceMockRecorder {
	return m.recorder
}

// VerifyToken mocks base method.
func (m *MockTokenVerifierInterface) VerifyToken(ctx context.Context, rawToken string) (*SessionClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyToken", ctx, rawToken)
	ret0, _ := ret[0].(*SessionClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyToken indicates an expected call of VerifyToken.
func (mr *MockTokenVerifierInterfaceMockRecorder) VerifyToken(ctx, rawToken any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyToken", reflect.TypeOf((*MockTokenVerifierInterface)(nil).VerifyToken), ctx, rawToken)
}

// MockSessionStoreInterface is a mock of SessionStoreInterface interface.
type MockSessionStoreInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSessionStoreInterfaceMockRecorder
	isgomock struct{}
}

// MockSessionStoreInterfaceMockRecorder is the mock recorder for MockSessionStoreInterface.
type MockSessionStoreInterfaceMockRecorder struct {
	mock *MockSessionStoreInterface
}

// NewMockSessionStoreInterface creates a new mock instance.
func NewMockSessionStoreInterface(ctrl *gomock.Controller) *MockSessionStoreInterface {
	mock := &MockSessionStoreInterface{ctrl: ctrl}
	mock.recorder = &MockSessionStoreInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionStoreInterface) EXPECT() *MockSessionStoreInterfaceMockRecorder {
	return m.recorder
}

// GetSession mocks base method.
func (m *MockSessionStoreInterface) GetSession(ctx context.Context, id string) (*types.UserSession, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSession", ctx, id)
	ret0, _ := ret[0].(*types.UserSession)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSession indicates an expected call of GetSession.
func (mr *MockSessionStoreInterfaceMockRecorder) GetSession(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSession", reflect.TypeOf((*MockSessionStoreInterface)(nil).GetSession), ctx, id)
}

// GetUserByID mocks base method.
func (m *MockSessionStoreInterface) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserByID", ctx, id)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserByID indicates an expected call of GetUserByID.
func (mr *MockSessionStoreInterfaceMockRecorder) GetUserByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserByID", reflect.TypeOf((*MockSessionStoreInterface)(nil).GetUserByID), ctx, id)
}

// TouchSession mocks base method.
func (m *MockSessionStoreInterface) TouchSession(ctx context.Context, id string, expiry time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TouchSession", ctx, id, expiry)
	ret0, _ := ret[0].(error)
	return ret0
}

// TouchSession indicates an expected call of TouchSession.
func (mr *MockSessionStoreInterfaceMockRecorder) TouchSession(ctx, id, expiry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TouchSession", reflect.TypeOf((*MockSessionStoreInterface)(nil).TouchSession), ctx, id, expiry)
}

// MockOIDCClientInterface is a mock of OIDCClientInterface interface.
type MockOIDCClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockOIDCClientInterfaceMockRecorder
	isgomock struct{}
}

// MockOIDCClientInterfaceMockRecorder is the mock recorder for MockOIDCClientInterface.
type MockOIDCClientInterfaceMockRecorder struct {
	mock *MockOIDCClientInterface
}

// NewMockOIDCClientInterface creates a new mock instance.
func NewMockOIDCClientInterface(ctrl *gomock.Controller) *MockOIDCClientInterface {
	mock := &MockOIDCClientInterface{ctrl: ctrl}
	mock.recorder = &MockOIDCClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOIDCClientInterface) EXPECT() *MockOIDCClientInterfaceMockRecorder {
	return m.recorder
}

// AuthCodeURL mocks base method.
func (m *MockOIDCClientInterface) AuthCodeURL(state string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AuthCodeURL", state)
	ret0, _ := ret[0].(string)
	return ret0
}

// AuthCodeURL indicates an expected call of AuthCodeURL.
func (mr *MockOIDCClientInterfaceMockRecorder) AuthCodeURL(state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AuthCodeURL", reflect.TypeOf((*MockOIDCClientInterface)(nil).AuthCodeURL), state)
}

// Exchange mocks base method.
func (m *MockOIDCClientInterface) Exchange(ctx context.Context, code string) (*IdentityClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Exchange", ctx, code)
	ret0, _ := ret[0].(*IdentityClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Exchange indicates an expected call of Exchange.
func (mr *MockOIDCClientInterfaceMockRecorder) Exchange(ctx, code any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Exchange", reflect.TypeOf((*MockOIDCClientInterface)(nil).Exchange), ctx, code)
}

// MockOIDCClientFactoryInterface is a mock of OIDCClientFactoryInterface interface.
type MockOIDCClientFactoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockOIDCClientFactoryInterfaceMockRecorder
	isgomock struct{}
}

// MockOIDCClientFactoryInterfaceMockRecorder is the mock recorder for MockOIDCClientFactoryInterface.
type MockOIDCClientFactoryInterfaceMockRecorder struct {
	mock *MockOIDCClientFactoryInterface
}

// NewMockOIDCClientFactoryInterface creates a new mock instance.
func NewMockOIDCClientFactoryInterface(ctrl *gomock.Controller) *MockOIDCClientFactoryInterface {
	mock := &MockOIDCClientFactoryInterface{ctrl: ctrl}
	mock.recorder = &MockOIDCClientFactoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOIDCClientFactoryInterface) EXPECT() *MockOIDCClientFactoryInterfaceMockRecorder {
	return m.recorder
}

// NewClient mocks base method.
func (m *MockOIDCClientFactoryInterface) NewClient(ctx context.Context, config *types.SSOConfig, redirectURL string) (OIDCClientInterface, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NewClient", ctx, config, redirectURL)
	ret0, _ := ret[0].(OIDCClientInterface)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NewClient indicates an expected call of NewClient.
func (mr *MockOIDCClientFactoryInterfaceMockRecorder) NewClient(ctx, config, redirectURL any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NewClient", reflect.TypeOf((*MockOIDCClientFactoryInterface)(nil).NewClient), ctx, config, redirectURL)
}
