package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rawafid/taqyim/internal/notify"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTelegramSender(t *testing.T) {
	Convey("Given a Telegram sender pointed at a local server", t, func() {
		ctx := context.Background()

		Convey("When delivery succeeds", func() {
			var gotPath string
			var gotBody map[string]string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			sender := notify.NewTelegramSender("tok123", "chat456", notify.WithEndpoint(srv.URL))
			err := sender.Send(ctx, "hello *world*")

			Convey("Then Send returns nil", func() {
				So(err, ShouldBeNil)
			})

			Convey("Then the bot API path embeds the token", func() {
				So(gotPath, ShouldEqual, "/bottok123/sendMessage")
			})

			Convey("Then the body carries chat id, text, and parse mode", func() {
				So(gotBody["chat_id"], ShouldEqual, "chat456")
				So(gotBody["text"], ShouldEqual, "hello *world*")
				So(gotBody["parse_mode"], ShouldEqual, "Markdown")
			})
		})

		Convey("When the API answers with a non-2xx status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, `{"ok":false}`, http.StatusBadGateway)
			}))
			defer srv.Close()

			sender := notify.NewTelegramSender("tok", "chat", notify.WithEndpoint(srv.URL))
			err := sender.Send(ctx, "msg")

			Convey("Then the failure wraps the transport sentinel", func() {
				So(errors.Is(err, notify.ErrTransport), ShouldBeTrue)
			})
		})

		Convey("When the server is unreachable", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
			srv.Close()

			sender := notify.NewTelegramSender("tok", "chat", notify.WithEndpoint(srv.URL))
			err := sender.Send(ctx, "msg")

			So(errors.Is(err, notify.ErrTransport), ShouldBeTrue)
		})

		Convey("When the server stalls past the timeout", func() {
			release := make(chan struct{})
			srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				<-release
			}))
			defer func() {
				close(release)
				srv.Close()
			}()

			sender := notify.NewTelegramSender("tok", "chat",
				notify.WithEndpoint(srv.URL),
				notify.WithTimeout(50*time.Millisecond),
			)
			err := sender.Send(ctx, "msg")

			Convey("Then the deadline surfaces as a transport error", func() {
				So(errors.Is(err, notify.ErrTransport), ShouldBeTrue)
			})
		})

		Convey("When the context is already canceled", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
			defer srv.Close()

			canceled, cancel := context.WithCancel(ctx)
			cancel()

			sender := notify.NewTelegramSender("tok", "chat", notify.WithEndpoint(srv.URL))
			err := sender.Send(canceled, "msg")

			So(errors.Is(err, notify.ErrTransport), ShouldBeTrue)
		})
	})
}
