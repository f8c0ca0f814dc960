package core_test

import (
	"context"
	"path/filepath"
	"time"

	"taskboard/internal/core"
	"taskboard/internal/db"
	"taskboard/internal/repository"
	"taskboard/pkg/token"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Projects", func() {
	var (
		ctx      context.Context
		projects *core.Projects
		owner    core.Identity
	)

	BeforeEach(func() {
		ctx = context.Background()

		store, err := db.NewSqliteDB(filepath.Join(GinkgoT().TempDir(), "test.db"))
		Expect(err).NotTo(HaveOccurred())
		Expect(repository.Migrate(store)).To(Succeed())

		logger := zap.NewNop().Sugar()
		users := repository.NewUserRepository(store)
		projectStore := repository.NewProjectRepository(store)
		auth := core.NewAuth(logger, users, projectStore, token.NewIssuer([]byte("test-secret")))
		projects = core.NewProjects(logger, projectStore)

		owner, err = auth.Register(ctx, core.RegisterInput{Username: "alice", Password: "secret"})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Add", func() {
		It("creates the project pending, with the typed-in fields kept verbatim", func() {
			record, err := projects.Add(ctx, core.ProjectInput{
				OwnerID:          owner.ID,
				Name:             "thesis",
				Type:             "university",
				StartDate:        "01.02.2024",
				EndDate:          "31.05.2024",
				AttachedFilePath: "/home/alice/thesis.pdf",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).NotTo(BeZero())
			Expect(record.Completed).To(BeFalse())
			Expect(record.EndDate).To(Equal("31.05.2024"))
			Expect(record.AttachedFilePath).To(Equal("/home/alice/thesis.pdf"))
		})

		It("accepts unparseable dates at insert time", func() {
			_, err := projects.Add(ctx, core.ProjectInput{OwnerID: owner.ID, Name: "draft", EndDate: "soonish"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a project without an existing owner", func() {
			_, err := projects.Add(ctx, core.ProjectInput{OwnerID: 9999, Name: "orphan"})
			Expect(err).To(MatchError(repository.ErrOwnerNotFound))
		})

		It("rejects a project without a name", func() {
			_, err := projects.Add(ctx, core.ProjectInput{OwnerID: owner.ID})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("List", func() {
		It("returns the owner's projects in insertion order", func() {
			for _, name := range []string{"first", "second", "third"} {
				_, err := projects.Add(ctx, core.ProjectInput{OwnerID: owner.ID, Name: name})
				Expect(err).NotTo(HaveOccurred())
			}

			records, err := projects.List(ctx, owner.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(records[0].Name).To(Equal("first"))
			Expect(records[1].Name).To(Equal("second"))
			Expect(records[2].Name).To(Equal("third"))
		})
	})

	Describe("ListWithDeadlines", func() {
		now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

		It("flags pending projects and skips completed ones", func() {
			dueSoon, err := projects.Add(ctx, core.ProjectInput{OwnerID: owner.ID, Name: "due soon", EndDate: "12.06.2024"})
			Expect(err).NotTo(HaveOccurred())
			overdueButDone, err := projects.Add(ctx, core.ProjectInput{OwnerID: owner.ID, Name: "done", EndDate: "01.06.2024"})
			Expect(err).NotTo(HaveOccurred())
			Expect(projects.SetCompleted(ctx, overdueButDone.ID, true)).To(Succeed())

			deadlines, err := projects.ListWithDeadlines(ctx, owner.ID, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(deadlines).To(HaveLen(2))
			Expect(deadlines[0].Project.ID).To(Equal(dueSoon.ID))
			Expect(deadlines[0].Status).To(Equal(core.StatusDueSoon))
			Expect(deadlines[1].Status).To(Equal(core.StatusOK))
		})

		It("survives a malformed end date and keeps listing", func() {
			_, err := projects.Add(ctx, core.ProjectInput{OwnerID: owner.ID, Name: "broken", EndDate: "not-a-date"})
			Expect(err).NotTo(HaveOccurred())
			_, err = projects.Add(ctx, core.ProjectInput{OwnerID: owner.ID, Name: "late", EndDate: "01.06.2024"})
			Expect(err).NotTo(HaveOccurred())

			deadlines, err := projects.ListWithDeadlines(ctx, owner.ID, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(deadlines).To(HaveLen(2))
			Expect(deadlines[0].Status).To(Equal(core.StatusOK))
			Expect(deadlines[1].Status).To(Equal(core.StatusOverdue))
		})
	})

	Describe("SetCompleted", func() {
		It("is idempotent", func() {
			record, err := projects.Add(ctx, core.ProjectInput{OwnerID: owner.ID, Name: "thesis"})
			Expect(err).NotTo(HaveOccurred())

			Expect(projects.SetCompleted(ctx, record.ID, true)).To(Succeed())
			Expect(projects.SetCompleted(ctx, record.ID, true)).To(Succeed())

			records, err := projects.List(ctx, owner.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(records[0].Completed).To(BeTrue())
		})
	})

	Describe("Delete", func() {
		It("removes only the targeted project", func() {
			first, err := projects.Add(ctx, core.ProjectInput{OwnerID: owner.ID, Name: "first"})
			Expect(err).NotTo(HaveOccurred())
			_, err = projects.Add(ctx, core.ProjectInput{OwnerID: owner.ID, Name: "second"})
			Expect(err).NotTo(HaveOccurred())

			Expect(projects.Delete(ctx, first.ID)).To(Succeed())

			records, err := projects.List(ctx, owner.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Name).To(Equal("second"))
		})
	})
})
