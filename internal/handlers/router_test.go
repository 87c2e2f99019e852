package handlers_test

import (
	"context"
	"errors"
	"sync"

	dg "github.com/bwmarrin/discordgo"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/glotchimo/nickbot/internal/handlers"
	. "github.com/glotchimo/nickbot/internal/mocks"
	md "github.com/glotchimo/nickbot/internal/models"
	"github.com/glotchimo/nickbot/internal/response"
	"github.com/glotchimo/nickbot/internal/testutils"
	"github.com/glotchimo/nickbot/internal/utils"
)

type stubHandler struct {
	name   string
	handle func(context.Context, handlers.Dependencies) error
}

func (h *stubHandler) Metadata() dg.ApplicationCommand {
	return dg.ApplicationCommand{Name: h.name, Description: "stub"}
}

func (h *stubHandler) Handle(ctx context.Context, dep handlers.Dependencies) error {
	return h.handle(ctx, dep)
}

type memoryRecorder struct {
	mu          sync.Mutex
	invocations []md.Invocation
	err         error
}

func (r *memoryRecorder) RecordInvocation(_ context.Context, inv md.Invocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invocations = append(r.invocations, inv)
	return r.err
}

var _ = Describe("Command enum", func() {
	It("Parses every registered command by name", func() {
		for _, c := range handlers.Commands {
			parsed, err := handlers.ParseCommand(c.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(c))
		}
	})

	It("Rejects names outside the enum", func() {
		_, err := handlers.ParseCommand("skip")
		Expect(err).To(MatchError(`unknown command "skip"`))
		Expect(utils.TypeOf(err)).To(Equal(utils.ErrInternal))
	})
})

var _ = Describe("Router", func() {
	var (
		ctrl      *gomock.Controller
		session   *MockSession
		responder *response.Responder
		recorder  *memoryRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		session = NewMockSession(ctrl)
		responder = response.NewSessionResponder(session, testutils.DiscardLogger())
		recorder = &memoryRecorder{}
	})

	newRouter := func(handle func(context.Context, handlers.Dependencies) error) *handlers.Router {
		router, err := handlers.NewRouter(testutils.DiscardLogger(), responder, recorder, map[handlers.Command]handlers.Handler{
			handlers.CommandPlay: &stubHandler{name: "play", handle: handle},
		})
		Expect(err).NotTo(HaveOccurred())
		return router
	}

	expectRespond := func(content string) {
		session.EXPECT().InteractionRespond(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *dg.Interaction, r *dg.InteractionResponse) error {
				Expect(r.Data.Content).To(Equal(content))
				return nil
			})
	}

	It("Refuses to start without a handler for every command", func() {
		_, err := handlers.NewRouter(testutils.DiscardLogger(), responder, nil, map[handlers.Command]handlers.Handler{})
		Expect(err).To(MatchError("no handler for command play"))
	})

	It("Refuses a handler registered under the wrong command", func() {
		_, err := handlers.NewRouter(testutils.DiscardLogger(), responder, nil, map[handlers.Command]handlers.Handler{
			handlers.CommandPlay: &stubHandler{name: "stop"},
		})
		Expect(err).To(HaveOccurred())
	})

	It("Lists command metadata for registration", func() {
		router := newRouter(nil)
		commands := router.Metadata()
		Expect(commands).To(HaveLen(1))
		Expect(commands[0].Name).To(Equal("play"))
	})

	It("Ignores interactions that are not application commands", func() {
		router := newRouter(func(context.Context, handlers.Dependencies) error {
			Fail("handler should not run")
			return nil
		})

		i := testutils.NewCommandInteraction("play", "1", "10", "20")
		i.Type = dg.InteractionMessageComponent
		router.Dispatch(context.Background(), i)
		router.Dispatch(context.Background(), nil)

		Expect(router.Handled()).To(BeZero())
		Expect(recorder.invocations).To(BeEmpty())
	})

	It("Answers commands that were never registered", func() {
		router := newRouter(nil)
		expectRespond(`Error: unknown command "stop"`)

		router.Dispatch(context.Background(), testutils.NewCommandInteraction("stop", "1", "10", "20"))

		Expect(recorder.invocations).To(HaveLen(1))
		Expect(recorder.invocations[0].Outcome).To(Equal(md.OutcomeError))
	})

	It("Records the invocation a handler completed", func() {
		router := newRouter(func(_ context.Context, dep handlers.Dependencies) error {
			dep.Invocation.Query = "q"
			dep.Invocation.Title = "T"
			dep.Invocation.Outcome = md.OutcomeResponded
			return dep.Reply.Send("done")
		})
		expectRespond("done")

		router.Dispatch(context.Background(), testutils.NewCommandInteraction("play", "1", "10", "20"))

		Expect(router.Handled()).To(BeEquivalentTo(1))
		Expect(recorder.invocations).To(HaveLen(1))

		inv := recorder.invocations[0]
		Expect(inv.ID).NotTo(BeEmpty())
		Expect(inv.InteractionID).To(Equal("1"))
		Expect(inv.GuildID).To(Equal("10"))
		Expect(inv.UserID).To(Equal("20"))
		Expect(inv.Command).To(Equal("play"))
		Expect(inv.Outcome).To(Equal(md.OutcomeResponded))
		Expect(inv.Title).To(Equal("T"))
	})

	It("Edits the initial response when a handler fails after sending it", func() {
		router := newRouter(func(_ context.Context, dep handlers.Dependencies) error {
			Expect(dep.Reply.Send("working")).To(Succeed())
			return errors.New("boom")
		})
		expectRespond("working")
		session.EXPECT().InteractionResponseEdit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ *dg.Interaction, e *dg.WebhookEdit) (*dg.Message, error) {
				Expect(*e.Content).To(Equal("Error: boom"))
				return &dg.Message{}, nil
			})

		router.Dispatch(context.Background(), testutils.NewCommandInteraction("play", "1", "10", "20"))

		Expect(recorder.invocations[0].Error).To(Equal("boom"))
	})

	It("Only logs failures to talk to Discord", func() {
		router := newRouter(func(context.Context, handlers.Dependencies) error {
			return utils.Fail(utils.ErrResponse, "could not edit response", errors.New("unknown webhook"))
		})

		router.Dispatch(context.Background(), testutils.NewCommandInteraction("play", "1", "10", "20"))

		Expect(recorder.invocations).To(HaveLen(1))
		Expect(recorder.invocations[0].Outcome).To(Equal(md.OutcomeError))
	})

	It("Tolerates a handler that returns without replying", func() {
		router := newRouter(func(context.Context, handlers.Dependencies) error {
			return nil
		})

		router.Dispatch(context.Background(), testutils.NewCommandInteraction("play", "1", "10", "20"))

		Expect(recorder.invocations).To(HaveLen(1))
		Expect(recorder.invocations[0].Outcome).To(Equal(md.OutcomePending))
	})

	It("Survives a recorder that fails", func() {
		recorder.err = errors.New("database down")
		router := newRouter(func(_ context.Context, dep handlers.Dependencies) error {
			return dep.Reply.Send("ok")
		})
		expectRespond("ok")

		router.Dispatch(context.Background(), testutils.NewCommandInteraction("play", "1", "10", "20"))
		Expect(router.Handled()).To(BeEquivalentTo(1))
	})
})
