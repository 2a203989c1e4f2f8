package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/rawafid/taqyim/internal/adapters/http/api"
	"github.com/rawafid/taqyim/internal/app"
	"github.com/rawafid/taqyim/internal/config"
	"github.com/rawafid/taqyim/internal/domain/catalog"
	"github.com/rawafid/taqyim/internal/i18n"
	"github.com/rawafid/taqyim/internal/notify"
	"github.com/rawafid/taqyim/pkg/logger"
	"github.com/rawafid/taqyim/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		_ = logger.Init()

		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("TAQYIM_ADDR", ":8080")
			_ = os.Setenv("TAQYIM_DEFAULT_LANGUAGE", "en")
			_ = os.Setenv("TAQYIM_INITIAL_DEPARTMENT", "marble")
			defer func() {
				_ = os.Unsetenv("TAQYIM_ADDR")
				_ = os.Unsetenv("TAQYIM_DEFAULT_LANGUAGE")
				_ = os.Unsetenv("TAQYIM_INITIAL_DEPARTMENT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DefaultLanguage, convey.ShouldEqual, "en")
				convey.So(cfg.InitialDepartment, convey.ShouldEqual, "marble")
			})
		})

		convey.Convey("When testing session creation", func() {
			convey.Convey("Then a session should be creatable with default options", func() {
				session := app.New()
				convey.So(session, convey.ShouldNotBeNil)
			})

			convey.Convey("And a session should be creatable with the wiring main uses", func() {
				lang, err := i18n.Parse("ar")
				convey.So(err, convey.ShouldBeNil)

				session := app.New(
					app.WithCatalog(catalog.Default()),
					app.WithSender(notify.NopSender{}),
					app.WithLogger(logger.Get()),
					app.WithLanguage(lang),
				)
				convey.So(session, convey.ShouldNotBeNil)

				session.SelectDepartment(context.Background(), "sales")
				convey.So(session.Criteria(context.Background()).DepartmentID, convey.ShouldEqual, "sales")
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			session := app.New()

			convey.Convey("Then routes should register on a fresh mux", func() {
				mux := http.NewServeMux()
				server := api.NewServer(session)
				convey.So(server, convey.ShouldNotBeNil)
				convey.So(func() { server.Register(context.Background(), mux) }, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then the metrics registry should be available", func() {
				convey.So(metrics.GetRegistry(), convey.ShouldNotBeNil)
			})
		})
	})
}
