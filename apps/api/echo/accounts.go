package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Jeevana090908/stdgrd/core/gradebook"
	"github.com/Jeevana090908/stdgrd/core/session"
	"github.com/Jeevana090908/stdgrd/core/student"
	"github.com/Jeevana090908/stdgrd/core/teacher"
)

type StudentLoginRequest struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *StudentLoginRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

type accountApi struct {
	svc      *gradebook.Service
	auth     *tokenAuth
	validate *validator.Validate
}

func registerAuthAPI(
	g *echo.Group,
	authed []echo.MiddlewareFunc,
	auth *tokenAuth,
	svc *gradebook.Service,
	validate *validator.Validate,
) {
	api := accountApi{
		svc:      svc,
		auth:     auth,
		validate: validate,
	}

	// un-authed endpoints
	g.POST("/teachers/login", api.teacherLogin)
	g.POST("/teachers/signup", api.teacherSignup)
	g.POST("/students/login", api.studentLogin)
	g.POST("/students/signup", api.studentSignup)

	// authed endpoints
	g.POST("/logout", api.logout, authed...)
	g.GET("/me", api.me, authed...)
}

func (api *accountApi) respondWithToken(ctx echo.Context, sess session.Session) error {
	token, err := api.auth.GenerateToken(sess)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Role: string(sess.Role)})
}

func (api *accountApi) teacherLogin(ctx echo.Context) error {
	var data teacher.Login
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to teacher.Login")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sess, err := api.svc.Login(session.RoleTeacher, data.Username, data.Password)
	if err != nil {
		return err
	}
	return api.respondWithToken(ctx, sess)
}

func (api *accountApi) studentLogin(ctx echo.Context) error {
	var data StudentLoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentLoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sess, err := api.svc.Login(session.RoleStudent, data.ID, data.Password)
	if err != nil {
		return err
	}
	return api.respondWithToken(ctx, sess)
}

func (api *accountApi) teacherSignup(ctx echo.Context) error {
	var data teacher.Signup
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to teacher.Signup")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	req := gradebook.SignupRequest{ID: data.Username, Password: data.Password}
	if err := api.svc.Signup(ctx.Request().Context(), session.RoleTeacher, req); err != nil {
		return errors.Wrap(err, "signing up teacher")
	}
	return ctx.JSON(http.StatusCreated, SuccessResponse{Success: "Teacher registered! Please login."})
}

func (api *accountApi) studentSignup(ctx echo.Context) error {
	var data student.Signup
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to student.Signup")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	req := gradebook.SignupRequest{ID: data.ID, Name: data.Name, Password: data.Password}
	if err := api.svc.Signup(ctx.Request().Context(), session.RoleStudent, req); err != nil {
		return errors.Wrap(err, "signing up student")
	}
	return ctx.JSON(http.StatusCreated, SuccessResponse{Success: "Student registered! Please login."})
}

func (api *accountApi) logout(ctx echo.Context) error {
	api.svc.Logout()
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Logged out."})
}

func (api *accountApi) me(ctx echo.Context) error {
	dash, err := api.svc.Dashboard()
	if err != nil {
		return errors.Wrap(err, "building dashboard")
	}
	return ctx.JSON(http.StatusOK, newDashboardResponse(dash))
}
