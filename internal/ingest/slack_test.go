package ingest_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/slack-go/slack"

	"taskflow.app/server/internal/ingest"
	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/service"
	"taskflow.app/server/internal/store/memory"
)

type fakeSlackClient struct {
	messages []slack.Message
	gotOldest string
}

func (f *fakeSlackClient) GetConversationHistoryContext(_ context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error) {
	f.gotOldest = params.Oldest
	return &slack.GetConversationHistoryResponse{Messages: f.messages}, nil
}

func slackMsg(ts, text string) slack.Message {
	m := slack.Message{}
	m.Timestamp = ts
	m.Text = text
	return m
}

var _ = Describe("SlackIngestor", func() {
	var (
		ctx      context.Context
		stores   *memory.Stores
		services *service.Services
		client   *fakeSlackClient
		ingestor *ingest.SlackIngestor
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = memory.NewStores(memory.NewDB())
		services = service.NewServices(service.ServicesConfig{Stores: stores})
		client = &fakeSlackClient{}
		ingestor = ingest.NewSlackIngestor(
			client,
			services.Tasks(),
			services.Notifier(),
			stores.Tasks(),
			"C123",
			1,
		)

		Expect(service.EnsureDefaults(ctx, stores, service.BootstrapConfig{
			AdminUsername: "admin",
			AdminPassword: "secret",
		})).To(Succeed())
	})

	It("creates tasks from new messages, oldest first", func() {
		// Slack returns newest first.
		client.messages = []slack.Message{
			slackMsg("1725100002.000200", "Second task"),
			slackMsg("1725100001.000100", "First task"),
		}

		Expect(ingestor.Poll(ctx)).To(Succeed())

		tasks, err := stores.Tasks().ListByWorkspace(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(tasks).To(HaveLen(2))
		Expect(tasks[0].Title).To(Equal("First task"))
		Expect(tasks[1].Title).To(Equal("Second task"))
		Expect(tasks[0].Source).To(HaveValue(Equal(model.TaskSourceSlack)))
		Expect(tasks[0].SlackMessageID).To(HaveValue(Equal("1725100001.000100")))
	})

	It("parses markers below the title line", func() {
		client.messages = []slack.Message{
			slackMsg("1725100001.000100", "Plan sprint\ntype: sprint\npriority: low\nkickoff next week"),
		}

		Expect(ingestor.Poll(ctx)).To(Succeed())

		tasks, err := stores.Tasks().ListByWorkspace(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(tasks).To(HaveLen(1))
		Expect(tasks[0].Title).To(Equal("Plan sprint"))
		Expect(tasks[0].TaskType).To(Equal(model.TaskTypeSprint))
		Expect(tasks[0].Priority).To(Equal(model.TaskPriorityLow))
		Expect(tasks[0].Description).To(HaveValue(Equal("kickoff next week")))
	})

	It("updates in place and emits a duplicate notification for a repeated timestamp", func() {
		client.messages = []slack.Message{slackMsg("1725100001.000100", "Original title")}
		Expect(ingestor.Poll(ctx)).To(Succeed())

		client.messages = []slack.Message{slackMsg("1725100001.000100", "Corrected title")}
		Expect(ingestor.Poll(ctx)).To(Succeed())

		tasks, err := stores.Tasks().ListByWorkspace(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(tasks).To(HaveLen(1))
		Expect(tasks[0].Title).To(Equal("Corrected title"))

		admin, err := stores.Users().GetByUsername(ctx, "admin")
		Expect(err).NotTo(HaveOccurred())
		notes, err := stores.Notifications().ListByUser(ctx, admin.ID)
		Expect(err).NotTo(HaveOccurred())

		var types []model.NotificationType
		for _, n := range notes {
			types = append(types, n.Type)
		}
		Expect(types).To(ContainElement(model.NotificationTaskDuplicate))
		// No task_updated side effect from the in-place refresh.
		Expect(types).NotTo(ContainElement(model.NotificationTaskUpdated))
	})

	It("uses the slack-specific created notification type", func() {
		client.messages = []slack.Message{slackMsg("1725100001.000100", "Slack task")}
		Expect(ingestor.Poll(ctx)).To(Succeed())

		admin, err := stores.Users().GetByUsername(ctx, "admin")
		Expect(err).NotTo(HaveOccurred())
		notes, err := stores.Notifications().ListByUser(ctx, admin.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(notes).To(HaveLen(1))
		Expect(notes[0].Type).To(Equal(model.NotificationTaskCreatedSlack))
	})

	It("skips system messages and blank text", func() {
		sys := slackMsg("1725100001.000100", "user joined")
		sys.SubType = "channel_join"
		client.messages = []slack.Message{sys, slackMsg("1725100002.000200", "   ")}

		Expect(ingestor.Poll(ctx)).To(Succeed())

		tasks, err := stores.Tasks().ListByWorkspace(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(tasks).To(BeEmpty())
	})

	It("advances the oldest watermark between polls", func() {
		client.messages = []slack.Message{slackMsg("1725100005.000500", "watermark")}
		Expect(ingestor.Poll(ctx)).To(Succeed())
		Expect(client.gotOldest).To(Equal(""))

		client.messages = nil
		Expect(ingestor.Poll(ctx)).To(Succeed())
		Expect(client.gotOldest).To(Equal("1725100005.000500"))
	})
})
