package echoapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Jeevana090908/stdgrd/core/gradebook"
	"github.com/Jeevana090908/stdgrd/core/roster"
	exportsvc "github.com/Jeevana090908/stdgrd/services/export"
)

type studentApi struct {
	svc      *gradebook.Service
	validate *validator.Validate
}

func registerStudentAPI(
	g *echo.Group,
	authed []echo.MiddlewareFunc,
	svc *gradebook.Service,
	validate *validator.Validate,
) {
	api := studentApi{
		svc:      svc,
		validate: validate,
	}

	sg := g.Group("/students", authed...)
	sg.GET("", api.query)
	sg.GET("/export", api.export, teacherMiddleware())
	sg.POST("", api.save, teacherMiddleware())
	sg.DELETE("/:id", api.destroy, teacherMiddleware())
}

func (api *studentApi) query(ctx echo.Context) error {
	mode, err := roster.ParseMode(ctx.QueryParam("mode"))
	if err != nil {
		return err
	}
	rows, err := api.svc.Project(mode)
	if err != nil {
		return errors.Wrap(err, "projecting roster")
	}
	return ctx.JSON(http.StatusOK, newRowResponses(rows))
}

func (api *studentApi) export(ctx echo.Context) error {
	mode, err := roster.ParseMode(ctx.QueryParam("mode"))
	if err != nil {
		return err
	}
	rows, err := api.svc.Project(mode)
	if err != nil {
		return errors.Wrap(err, "projecting roster")
	}

	var buf bytes.Buffer
	if err = exportsvc.WriteRoster(&buf, mode, rows); err != nil {
		return errors.Wrap(err, "exporting roster")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportsvc.Filename(mode)))
	return ctx.Blob(http.StatusOK, exportsvc.ContentType, buf.Bytes())
}

func (api *studentApi) save(ctx echo.Context) error {
	var form StudentForm
	if err := ctx.Bind(&form); err != nil {
		return errors.Wrap(err, "binding to StudentForm")
	}
	data := form.NewStudent()
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	st, err := api.svc.AddOrUpdateStudent(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "saving student")
	}
	return ctx.JSON(http.StatusOK, newStudentResponse(st))
}

func (api *studentApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteStudent(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}
