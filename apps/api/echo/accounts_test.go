package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

const personNameErr = "use only letters and single spaces between words (no numbers or special characters)"

func Test_home(t *testing.T) {
	app := setup(t)
	rec := app.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the stdgrd API!", rec.Body.String())
}

func Test_accountApi_teacherLogin(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{
			name:     "empty body",
			body:     marshalObj(t, map[string]string{}),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"username": "this field is required", "password": "this field is required"}),
		},
		{
			name:     "wrong password",
			body:     marshalObj(t, map[string]string{"username": "admin", "password": "lol"}),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, httpErr{Error: "invalid credentials"}),
		},
		{
			name:     "malformed json",
			body:     []byte(`{"username":`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "default admin",
			body:     marshalObj(t, map[string]string{"username": "admin", "password": "admin"}),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(http.MethodPost, "/v1/teachers/login", "", tt.body)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_accountApi_teacherSignup(t *testing.T) {
	app := setup(t)
	body := marshalObj(t, map[string]string{"username": "mr", "password": "x"})

	rec := app.do(http.MethodPost, "/v1/teachers/signup", "", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// duplicate usernames are accepted
	rec = app.do(http.MethodPost, "/v1/teachers/signup", "", marshalObj(t, map[string]string{"username": "mr", "password": "y"}))
	assert.Equal(t, http.StatusCreated, rec.Code)

	assert.NotEmpty(t, app.login(t, "teachers", "mr", "x"))
	assert.NotEmpty(t, app.login(t, "teachers", "mr", "y"))
}

func Test_accountApi_studentSignupAndLogin(t *testing.T) {
	app := setup(t)

	tests := []httpTest{
		{
			name:     "invalid name",
			path:     "/v1/students/signup",
			body:     marshalObj(t, map[string]string{"id": "S1", "name": "Ann  Lee", "password": "pw"}),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"name": personNameErr}),
		},
		{
			name:     "signup",
			path:     "/v1/students/signup",
			body:     marshalObj(t, map[string]string{"id": "S1", "name": "Ann Lee", "password": "pw"}),
			wantCode: http.StatusCreated,
			wantData: marshalObj(t, SuccessResponse{Success: "Student registered! Please login."}),
		},
		{
			name:     "duplicate id",
			path:     "/v1/students/signup",
			body:     marshalObj(t, map[string]string{"id": "S1", "name": "Bob", "password": "pw"}),
			wantCode: http.StatusConflict,
			wantData: marshalObj(t, httpErr{Error: "student ID already exists"}),
		},
		{
			name:     "wrong password",
			path:     "/v1/students/login",
			body:     marshalObj(t, map[string]string{"id": "S1", "password": "S1"}),
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, httpErr{Error: "student not found or wrong password"}),
		},
		{
			name:     "login",
			path:     "/v1/students/login",
			body:     marshalObj(t, map[string]string{"id": "S1", "password": "pw"}),
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(http.MethodPost, tt.path, "", tt.body)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_accountApi_logout(t *testing.T) {
	app := setup(t)

	rec := app.do(http.MethodPost, "/v1/logout", "")
	checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marshalObj(t, errMissingToken)}, rec)

	rec = app.do(http.MethodPost, "/v1/logout", "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := app.login(t, "teachers", "admin", "admin")
	rec = app.do(http.MethodPost, "/v1/logout", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodGet, "/v1/me", token)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusUnauthorized,
		wantData: marshalObj(t, httpErr{Error: "session ended, log in again"}),
	}, rec)
}

func Test_accountApi_singleSession(t *testing.T) {
	app := setup(t)

	first := app.login(t, "teachers", "admin", "admin")
	second := app.login(t, "teachers", "admin", "admin")

	assert.Equal(t, http.StatusUnauthorized, app.do(http.MethodGet, "/v1/me", first).Code)
	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/v1/me", second).Code)

	// failed logins leave the current session alone
	rec := app.do(http.MethodPost, "/v1/teachers/login", "", marshalObj(t, map[string]string{"username": "admin", "password": "nope"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = app.do(http.MethodPost, "/v1/students/login", "", marshalObj(t, map[string]string{"id": "nobody", "password": "x"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusOK, app.do(http.MethodGet, "/v1/me", second).Code)
}

func Test_accountApi_me(t *testing.T) {
	app := setup(t)

	token := app.login(t, "teachers", "admin", "admin")
	rec := app.do(http.MethodGet, "/v1/me", token)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marshalObj(t, map[string]string{"role": "teacher", "teacher": "admin"}),
	}, rec)

	rec = app.do(http.MethodPost, "/v1/students", token, []byte(`{"id":"S2","name":"Bob","marks":[30,90]}`))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodPost, "/v1/students/signup", "", marshalObj(t, map[string]string{"id": "S1", "name": "Ann", "password": "pw"}))
	assert.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name     string
		id       string
		password string
		want     string
	}{
		{
			name:     "no marks yet",
			id:       "S1",
			password: "pw",
			want: `{"role":"student","message":"No marks added yet by teacher.",
				"student":{"id":"S1","name":"Ann","branch":"","marks":[],"cgpa":"0"}}`,
		},
		{
			name:     "graded",
			id:       "S2",
			password: "S2",
			want: `{"role":"student",
				"student":{"id":"S2","name":"Bob","branch":"","marks":[{"subject":"Subject 1","mark":30},{"subject":"Subject 2","mark":90}],"total":120,"cgpa":"6.32","grade":"Fail"},
				"subjects":[{"subject":"Subject 1","mark":30,"result":"Fail"},{"subject":"Subject 2","mark":90,"result":"Pass"}],
				"summary":{"total":120,"cgpa":"6.32","grade":"Fail"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := app.login(t, "students", tt.id, tt.password)
			rec := app.do(http.MethodGet, "/v1/me", token)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}
