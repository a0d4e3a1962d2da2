// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package auth -destination ./mock_auth.go -source=./interfaces.go
//

// Package auth is a generated GoMock package.
package auth

import (
	context "context"
	http "net/http"
	reflect "reflect"
	time "time"

	types "github.com/canonical/app-builder/internal/types"
	authentication "github.com/canonical/app-builder/pkg/authentication"
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

// AcceptOrganizationInvite mocks base method.
func (m *MockServiceInterface) AcceptOrganizationInvite(ctx context.Context, session *authentication.SessionUser, token string) (*LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AcceptOrganizationInvite", ctx, session, token)
	ret0, _ := ret[0].(*LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AcceptOrganizationInvite indicates an expected call of AcceptOrganizationInvite.
func (mr *MockServiceInterfaceMockRecorder) AcceptOrganizationInvite(ctx, session, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AcceptOrganizationInvite", reflect.TypeOf((*MockServiceInterface)(nil).AcceptOrganizationInvite), ctx, session, token)
}

// ActivateAccountWithToken mocks base method.
func (m *MockServiceInterface) ActivateAccountWithToken(ctx context.Context, req *ActivateAccountRequest) (*LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActivateAccountWithToken", ctx, req)
	ret0, _ := ret[0].(*LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ActivateAccountWithToken indicates an expected call of ActivateAccountWithToken.
func (mr *MockServiceInterfaceMockRecorder) ActivateAccountWithToken(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActivateAccountWithToken", reflect.TypeOf((*MockServiceInterface)(nil).ActivateAccountWithToken), ctx, req)
}

// AuthorizeOrganization mocks base method.
func (m *MockServiceInterface) AuthorizeOrganization(ctx context.Context, session *authentication.SessionUser) (*AuthorizeResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AuthorizeOrganization", ctx, session)
	ret0, _ := ret[0].(*AuthorizeResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AuthorizeOrganization indicates an expected call of AuthorizeOrganization.
func (mr *MockServiceInterfaceMockRecorder) AuthorizeOrganization(ctx, session any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AuthorizeOrganization", reflect.TypeOf((*MockServiceInterface)(nil).AuthorizeOrganization), ctx, session)
}

// ForgotPassword mocks base method.
func (m *MockServiceInterface) ForgotPassword(ctx context.Context, email string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ForgotPassword", ctx, email)
	ret0, _ := ret[0].(error)
	return ret0
}

// ForgotPassword indicates an expected call of ForgotPassword.
func (mr *MockServiceInterfaceMockRecorder) ForgotPassword(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForgotPassword", reflect.TypeOf((*MockServiceInterface)(nil).ForgotPassword), ctx, email)
}

// Login mocks base method.
func (m *MockServiceInterface) Login(ctx context.Context, req *LoginRequest, organizationID string, loggedIn *authentication.SessionUser) (*LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", ctx, req, organizationID, loggedIn)
	ret0, _ := ret[0].(*LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Login indicates an expected call of Login.
func (mr *MockServiceInterfaceMockRecorder) Login(ctx, req, organizationID, loggedIn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockServiceInterface)(nil).Login), ctx, req, organizationID, loggedIn)
}

// Logout mocks base method.
func (m *MockServiceInterface) Logout(ctx context.Context, session *authentication.SessionUser) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Logout", ctx, session)
	ret0, _ := ret[0].(error)
	return ret0
}

// Logout indicates an expected call of Logout.
func (mr *MockServiceInterfaceMockRecorder) Logout(ctx, session any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Logout", reflect.TypeOf((*MockServiceInterface)(nil).Logout), ctx, session)
}

// ResendInvite mocks base method.
func (m *MockServiceInterface) ResendInvite(ctx context.Context, email string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResendInvite", ctx, email)
	ret0, _ := ret[0].(error)
	return ret0
}

// ResendInvite indicates an expected call of ResendInvite.
func (mr *MockServiceInterfaceMockRecorder) ResendInvite(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResendInvite", reflect.TypeOf((*MockServiceInterface)(nil).ResendInvite), ctx, email)
}

// ResetPassword mocks base method.
func (m *MockServiceInterface) ResetPassword(ctx context.Context, token, password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResetPassword", ctx, token, password)
	ret0, _ := ret[0].(error)
	return ret0
}

// ResetPassword indicates an expected call of ResetPassword.
func (mr *MockServiceInterfaceMockRecorder) ResetPassword(ctx, token, password any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResetPassword", reflect.TypeOf((*MockServiceInterface)(nil).ResetPassword), ctx, token, password)
}

// SSOAuthorizationURL mocks base method.
func (m *MockServiceInterface) SSOAuthorizationURL(ctx context.Context, configID, state string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SSOAuthorizationURL", ctx, configID, state)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SSOAuthorizationURL indicates an expected call of SSOAuthorizationURL.
func (mr *MockServiceInterfaceMockRecorder) SSOAuthorizationURL(ctx, configID, state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SSOAuthorizationURL", reflect.TypeOf((*MockServiceInterface)(nil).SSOAuthorizationURL), ctx, configID, state)
}

// SSOLogin mocks base method.
func (m *MockServiceInterface) SSOLogin(ctx context.Context, configID, code string, loggedIn *authentication.SessionUser) (*LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SSOLogin", ctx, configID, code, loggedIn)
	ret0, _ := ret[0].(*LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SSOLogin indicates an expected call of SSOLogin.
func (mr *MockServiceInterfaceMockRecorder) SSOLogin(ctx, configID, code, loggedIn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SSOLogin", reflect.TypeOf((*MockServiceInterface)(nil).SSOLogin), ctx, configID, code, loggedIn)
}

// Session mocks base method.
func (m *MockServiceInterface) Session(ctx context.Context, session *authentication.SessionUser) (*SessionPayload, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Session", ctx, session)
	ret0, _ := ret[0].(*SessionPayload)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Session indicates an expected call of Session.
func (mr *MockServiceInterfaceMockRecorder) Session(ctx, session any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Session", reflect.TypeOf((*MockServiceInterface)(nil).Session), ctx, session)
}

// SetupAccountFromInvitationToken mocks base method.
func (m *MockServiceInterface) SetupAccountFromInvitationToken(ctx context.Context, req *SetupAccountRequest) (*LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetupAccountFromInvitationToken", ctx, req)
	ret0, _ := ret[0].(*LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetupAccountFromInvitationToken indicates an expected call of SetupAccountFromInvitationToken.
func (mr *MockServiceInterfaceMockRecorder) SetupAccountFromInvitationToken(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetupAccountFromInvitationToken", reflect.TypeOf((*MockServiceInterface)(nil).SetupAccountFromInvitationToken), ctx, req)
}

// SetupAdmin mocks base method.
func (m *MockServiceInterface) SetupAdmin(ctx context.Context, req *SetupAdminRequest) (*LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetupAdmin", ctx, req)
	ret0, _ := ret[0].(*LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetupAdmin indicates an expected call of SetupAdmin.
func (mr *MockServiceInterfaceMockRecorder) SetupAdmin(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetupAdmin", reflect.TypeOf((*MockServiceInterface)(nil).SetupAdmin), ctx, req)
}

// Signup mocks base method.
func (m *MockServiceInterface) Signup(ctx context.Context, req *SignupRequest) (*LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Signup", ctx, req)
	ret0, _ := ret[0].(*LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Signup indicates an expected call of Signup.
func (mr *MockServiceInterfaceMockRecorder) Signup(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Signup", reflect.TypeOf((*MockServiceInterface)(nil).Signup), ctx, req)
}

// SwitchOrganization mocks base method.
func (m *MockServiceInterface) SwitchOrganization(ctx context.Context, organizationID string, session *authentication.SessionUser) (*LoginResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SwitchOrganization", ctx, organizationID, session)
	ret0, _ := ret[0].(*LoginResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SwitchOrganization indicates an expected call of SwitchOrganization.
func (mr *MockServiceInterfaceMockRecorder) SwitchOrganization(ctx, organizationID, session any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SwitchOrganization", reflect.TypeOf((*MockServiceInterface)(nil).SwitchOrganization), ctx, organizationID, session)
}

// ValidateUser mocks base method.
func (m *MockServiceInterface) ValidateUser(ctx context.Context, email, password, organizationID string) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateUser", ctx, email, password, organizationID)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateUser indicates an expected call of ValidateUser.
func (mr *MockServiceInterfaceMockRecorder) ValidateUser(ctx, email, password, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateUser", reflect.TypeOf((*MockServiceInterface)(nil).ValidateUser), ctx, email, password, organizationID)
}

// VerifyInviteToken mocks base method.
func (m *MockServiceInterface) VerifyInviteToken(ctx context.Context, token, organizationToken string) (*VerifyInviteResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyInviteToken", ctx, token, organizationToken)
	ret0, _ := ret[0].(*VerifyInviteResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyInviteToken indicates an expected call of VerifyInviteToken.
func (mr *MockServiceInterfaceMockRecorder) VerifyInviteToken(ctx, token, organizationToken any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyInviteToken", reflect.TypeOf((*MockServiceInterface)(nil).VerifyInviteToken), ctx, token, organizationToken)
}

// VerifyOrganizationToken mocks base method.
func (m *MockServiceInterface) VerifyOrganizationToken(ctx context.Context, token string) (*VerifyInviteResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyOrganizationToken", ctx, token)
	ret0, _ := ret[0].(*VerifyInviteResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// VerifyOrganizationToken indicates an expected call of VerifyOrganizationToken.
func (mr *MockServiceInterfaceMockRecorder) VerifyOrganizationToken(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyOrganizationToken", reflect.TypeOf((*MockServiceInterface)(nil).VerifyOrganizationToken), ctx, token)
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

// ActivateOrganizationUser mocks base method.
func (m *MockStorageInterface) ActivateOrganizationUser(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActivateOrganizationUser", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// ActivateOrganizationUser indicates an expected call of ActivateOrganizationUser.
func (mr *MockStorageInterfaceMockRecorder) ActivateOrganizationUser(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActivateOrganizationUser", reflect.TypeOf((*MockStorageInterface)(nil).ActivateOrganizationUser), ctx, id)
}

// CountActiveUsers mocks base method.
func (m *MockStorageInterface) CountActiveUsers(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountActiveUsers", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountActiveUsers indicates an expected call of CountActiveUsers.
func (mr *MockStorageInterfaceMockRecorder) CountActiveUsers(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountActiveUsers", reflect.TypeOf((*MockStorageInterface)(nil).CountActiveUsers), ctx)
}

// CountActiveWorkspaces mocks base method.
func (m *MockStorageInterface) CountActiveWorkspaces(ctx context.Context, userID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountActiveWorkspaces", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountActiveWorkspaces indicates an expected call of CountActiveWorkspaces.
func (mr *MockStorageInterfaceMockRecorder) CountActiveWorkspaces(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountActiveWorkspaces", reflect.TypeOf((*MockStorageInterface)(nil).CountActiveWorkspaces), ctx, userID)
}

// CountPersonalWorkspaces mocks base method.
func (m *MockStorageInterface) CountPersonalWorkspaces(ctx context.Context, userID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountPersonalWorkspaces", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountPersonalWorkspaces indicates an expected call of CountPersonalWorkspaces.
func (mr *MockStorageInterfaceMockRecorder) CountPersonalWorkspaces(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountPersonalWorkspaces", reflect.TypeOf((*MockStorageInterface)(nil).CountPersonalWorkspaces), ctx, userID)
}

// CreateOrganization mocks base method.
func (m *MockStorageInterface) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOrganization", ctx, o)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOrganization indicates an expected call of CreateOrganization.
func (mr *MockStorageInterfaceMockRecorder) CreateOrganization(ctx, o any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOrganization", reflect.TypeOf((*MockStorageInterface)(nil).CreateOrganization), ctx, o)
}

// CreateOrganizationUser mocks base method.
func (m *MockStorageInterface) CreateOrganizationUser(ctx context.Context, ou *types.OrganizationUser) (*types.OrganizationUser, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateOrganizationUser", ctx, ou)
	ret0, _ := ret[0].(*types.OrganizationUser)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateOrganizationUser indicates an expected call of CreateOrganizationUser.
func (mr *MockStorageInterfaceMockRecorder) CreateOrganizationUser(ctx, ou any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateOrganizationUser", reflect.TypeOf((*MockStorageInterface)(nil).CreateOrganizationUser), ctx, ou)
}

// CreateSession mocks base method.
func (m *MockStorageInterface) CreateSession(ctx context.Context, userID, device string, expiry time.Time) (*types.UserSession, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSession", ctx, userID, device, expiry)
	ret0, _ := ret[0].(*types.UserSession)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateSession indicates an expected call of CreateSession.
func (mr *MockStorageInterfaceMockRecorder) CreateSession(ctx, userID, device, expiry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSession", reflect.TypeOf((*MockStorageInterface)(nil).CreateSession), ctx, userID, device, expiry)
}

// CreateUser mocks base method.
func (m *MockStorageInterface) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", ctx, u)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateUser indicates an expected call of CreateUser.
func (mr *MockStorageInterfaceMockRecorder) CreateUser(ctx, u any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUser", reflect.TypeOf((*MockStorageInterface)(nil).CreateUser), ctx, u)
}

// DeleteSession mocks base method.
func (m *MockStorageInterface) DeleteSession(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteSession", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteSession indicates an expected call of DeleteSession.
func (mr *MockStorageInterfaceMockRecorder) DeleteSession(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteSession", reflect.TypeOf((*MockStorageInterface)(nil).DeleteSession), ctx, id)
}

// GetOrganization mocks base method.
func (m *MockStorageInterface) GetOrganization(ctx context.Context, idOrSlug string) (*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrganization", ctx, idOrSlug)
	ret0, _ := ret[0].(*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrganization indicates an expected call of GetOrganization.
func (mr *MockStorageInterfaceMockRecorder) GetOrganization(ctx, idOrSlug any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrganization", reflect.TypeOf((*MockStorageInterface)(nil).GetOrganization), ctx, idOrSlug)
}

// GetOrganizationUserByToken mocks base method.
func (m *MockStorageInterface) GetOrganizationUserByToken(ctx context.Context, token string) (*types.OrganizationUser, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrganizationUserByToken", ctx, token)
	ret0, _ := ret[0].(*types.OrganizationUser)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrganizationUserByToken indicates an expected call of GetOrganizationUserByToken.
func (mr *MockStorageInterfaceMockRecorder) GetOrganizationUserByToken(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrganizationUserByToken", reflect.TypeOf((*MockStorageInterface)(nil).GetOrganizationUserByToken), ctx, token)
}

// GetSSOConfig mocks base method.
func (m *MockStorageInterface) GetSSOConfig(ctx context.Context, id string) (*types.SSOConfig, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSSOConfig", ctx, id)
	ret0, _ := ret[0].(*types.SSOConfig)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSSOConfig indicates an expected call of GetSSOConfig.
func (mr *MockStorageInterfaceMockRecorder) GetSSOConfig(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSSOConfig", reflect.TypeOf((*MockStorageInterface)(nil).GetSSOConfig), ctx, id)
}

// GetUserByEmail mocks base method.
func (m *MockStorageInterface) GetUserByEmail(ctx context.Context, email, organizationID string, status types.WorkspaceUserStatus) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserByEmail", ctx, email, organizationID, status)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserByEmail indicates an expected call of GetUserByEmail.
func (mr *MockStorageInterfaceMockRecorder) GetUserByEmail(ctx, email, organizationID, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserByEmail", reflect.TypeOf((*MockStorageInterface)(nil).GetUserByEmail), ctx, email, organizationID, status)
}

// GetUserByForgotPasswordToken mocks base method.
func (m *MockStorageInterface) GetUserByForgotPasswordToken(ctx context.Context, token string) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserByForgotPasswordToken", ctx, token)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserByForgotPasswordToken indicates an expected call of GetUserByForgotPasswordToken.
func (mr *MockStorageInterfaceMockRecorder) GetUserByForgotPasswordToken(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserByForgotPasswordToken", reflect.TypeOf((*MockStorageInterface)(nil).GetUserByForgotPasswordToken), ctx, token)
}

// GetUserByID mocks base method.
func (m *MockStorageInterface) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserByID", ctx, id)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserByID indicates an expected call of GetUserByID.
func (mr *MockStorageInterfaceMockRecorder) GetUserByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserByID", reflect.TypeOf((*MockStorageInterface)(nil).GetUserByID), ctx, id)
}

// GetUserByInvitationToken mocks base method.
func (m *MockStorageInterface) GetUserByInvitationToken(ctx context.Context, token string) (*types.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserByInvitationToken", ctx, token)
	ret0, _ := ret[0].(*types.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserByInvitationToken indicates an expected call of GetUserByInvitationToken.
func (mr *MockStorageInterfaceMockRecorder) GetUserByInvitationToken(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserByInvitationToken", reflect.TypeOf((*MockStorageInterface)(nil).GetUserByInvitationToken), ctx, token)
}

// IncrementPasswordRetryCount mocks base method.
func (m *MockStorageInterface) IncrementPasswordRetryCount(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementPasswordRetryCount", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementPasswordRetryCount indicates an expected call of IncrementPasswordRetryCount.
func (mr *MockStorageInterfaceMockRecorder) IncrementPasswordRetryCount(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementPasswordRetryCount", reflect.TypeOf((*MockStorageInterface)(nil).IncrementPasswordRetryCount), ctx, id)
}

// ListOrganizationsWithLogin mocks base method.
func (m *MockStorageInterface) ListOrganizationsWithLogin(ctx context.Context, userID, sso string) ([]*types.Organization, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOrganizationsWithLogin", ctx, userID, sso)
	ret0, _ := ret[0].([]*types.Organization)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOrganizationsWithLogin indicates an expected call of ListOrganizationsWithLogin.
func (mr *MockStorageInterfaceMockRecorder) ListOrganizationsWithLogin(ctx, userID, sso any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOrganizationsWithLogin", reflect.TypeOf((*MockStorageInterface)(nil).ListOrganizationsWithLogin), ctx, userID, sso)
}

// OrganizationExists mocks base method.
func (m *MockStorageInterface) OrganizationExists(ctx context.Context, name, slug string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OrganizationExists", ctx, name, slug)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OrganizationExists indicates an expected call of OrganizationExists.
func (mr *MockStorageInterfaceMockRecorder) OrganizationExists(ctx, name, slug any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OrganizationExists", reflect.TypeOf((*MockStorageInterface)(nil).OrganizationExists), ctx, name, slug)
}

// UpdateUser mocks base method.
func (m *MockStorageInterface) UpdateUser(ctx context.Context, id string, update *types.UserUpdate) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateUser", ctx, id, update)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateUser indicates an expected call of UpdateUser.
func (mr *MockStorageInterfaceMockRecorder) UpdateUser(ctx, id, update any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateUser", reflect.TypeOf((*MockStorageInterface)(nil).UpdateUser), ctx, id, update)
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

// MockAuthzInterface is a mock of AuthzInterface interface.
type MockAuthzInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthzInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthzInterfaceMockRecorder is the mock recorder for MockAuthzInterface.
type MockAuthzInterfaceMockRecorder struct {
	mock *MockAuthzInterface
}

// NewMockAuthzInterface creates a new mock instance.
func NewMockAuthzInterface(ctrl *gomock.Controller) *MockAuthzInterface {
	mock := &MockAuthzInterface{ctrl: ctrl}
	mock.recorder = &MockAuthzInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthzInterface) EXPECT() *MockAuthzInterfaceMockRecorder {
	return m.recorder
}

// AssignOrganizationAdmin mocks base method.
func (m *MockAuthzInterface) AssignOrganizationAdmin(ctx context.Context, organizationID, userID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignOrganizationAdmin", ctx, organizationID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignOrganizationAdmin indicates an expected call of AssignOrganizationAdmin.
func (mr *MockAuthzInterfaceMockRecorder) AssignOrganizationAdmin(ctx, organizationID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignOrganizationAdmin", reflect.TypeOf((*MockAuthzInterface)(nil).AssignOrganizationAdmin), ctx, organizationID, userID)
}

// AssignOrganizationMember mocks base method.
func (m *MockAuthzInterface) AssignOrganizationMember(ctx context.Context, organizationID, userID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignOrganizationMember", ctx, organizationID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignOrganizationMember indicates an expected call of AssignOrganizationMember.
func (mr *MockAuthzInterfaceMockRecorder) AssignOrganizationMember(ctx, organizationID, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignOrganizationMember", reflect.TypeOf((*MockAuthzInterface)(nil).AssignOrganizationMember), ctx, organizationID, userID)
}

// MockEmailInterface is a mock of EmailInterface interface.
type MockEmailInterface struct {
	ctrl     *gomock.Controller
	recorder *MockEmailInterfaceMockRecorder
	isgomock struct{}
}

// MockEmailInterfaceMockRecorder is the mock recorder for MockEmailInterface.
type MockEmailInterfaceMockRecorder struct {
	mock *MockEmailInterface
}

// NewMockEmailInterface creates a new mock instance.
func NewMockEmailInterface(ctrl *gomock.Controller) *MockEmailInterface {
	mock := &MockEmailInterface{ctrl: ctrl}
	mock.recorder = &MockEmailInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEmailInterface) EXPECT() *MockEmailInterfaceMockRecorder {
	return m.recorder
}

// SendOrganizationUserWelcomeEmail mocks base method.
func (m *MockEmailInterface) SendOrganizationUserWelcomeEmail(ctx context.Context, to, name, invitationToken, organizationName, organizationID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendOrganizationUserWelcomeEmail", ctx, to, name, invitationToken, organizationName, organizationID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendOrganizationUserWelcomeEmail indicates an expected call of SendOrganizationUserWelcomeEmail.
func (mr *MockEmailInterfaceMockRecorder) SendOrganizationUserWelcomeEmail(ctx, to, name, invitationToken, organizationName, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendOrganizationUserWelcomeEmail", reflect.TypeOf((*MockEmailInterface)(nil).SendOrganizationUserWelcomeEmail), ctx, to, name, invitationToken, organizationName, organizationID)
}

// SendPasswordResetEmail mocks base method.
func (m *MockEmailInterface) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendPasswordResetEmail", ctx, to, token)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendPasswordResetEmail indicates an expected call of SendPasswordResetEmail.
func (mr *MockEmailInterfaceMockRecorder) SendPasswordResetEmail(ctx, to, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendPasswordResetEmail", reflect.TypeOf((*MockEmailInterface)(nil).SendPasswordResetEmail), ctx, to, token)
}

// SendWelcomeEmail mocks base method.
func (m *MockEmailInterface) SendWelcomeEmail(ctx context.Context, to, name, invitationToken, organizationToken, organizationID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendWelcomeEmail", ctx, to, name, invitationToken, organizationToken, organizationID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendWelcomeEmail indicates an expected call of SendWelcomeEmail.
func (mr *MockEmailInterfaceMockRecorder) SendWelcomeEmail(ctx, to, name, invitationToken, organizationToken, organizationID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendWelcomeEmail", reflect.TypeOf((*MockEmailInterface)(nil).SendWelcomeEmail), ctx, to, name, invitationToken, organizationToken, organizationID)
}

// MockSessionMiddlewareInterface is a mock of SessionMiddlewareInterface interface.
type MockSessionMiddlewareInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSessionMiddlewareInterfaceMockRecorder
	isgomock struct{}
}

// MockSessionMiddlewareInterfaceMockRecorder is the mock recorder for MockSessionMiddlewareInterface.
type MockSessionMiddlewareInterfaceMockRecorder struct {
	mock *MockSessionMiddlewareInterface
}

// NewMockSessionMiddlewareInterface creates a new mock instance.
func NewMockSessionMiddlewareInterface(ctrl *gomock.Controller) *MockSessionMiddlewareInterface {
	mock := &MockSessionMiddlewareInterface{ctrl: ctrl}
	mock.recorder = &MockSessionMiddlewareInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionMiddlewareInterface) EXPECT() *MockSessionMiddlewareInterfaceMockRecorder {
	return m.recorder
}

// Authenticate mocks base method.
func (m *MockSessionMiddlewareInterface) Authenticate() func(http.Handler) http.Handler {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Authenticate")
	ret0, _ := ret[0].(func(http.Handler) http.Handler)
	return ret0
}

// Authenticate indicates an expected call of Authenticate.
func (mr *MockSessionMiddlewareInterfaceMockRecorder) Authenticate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Authenticate", reflect.TypeOf((*MockSessionMiddlewareInterface)(nil).Authenticate))
}

// OptionalAuthenticate mocks base method.
func (m *MockSessionMiddlewareInterface) OptionalAuthenticate() func(http.Handler) http.Handler {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OptionalAuthenticate")
	ret0, _ := ret[0].(func(http.Handler) http.Handler)
	return ret0
}

// OptionalAuthenticate indicates an expected call of OptionalAuthenticate.
func (mr *MockSessionMiddlewareInterfaceMockRecorder) OptionalAuthenticate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OptionalAuthenticate", reflect.TypeOf((*MockSessionMiddlewareInterface)(nil).OptionalAuthenticate))
}
