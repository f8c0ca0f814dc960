package core_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	"taskboard/internal/core"
	"taskboard/internal/db"
	"taskboard/internal/repository"
	"taskboard/pkg/token"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Exporter", func() {
	var (
		ctx        context.Context
		projects   *core.Projects
		exporter   *core.Exporter
		owner      core.Identity
		exportPath string
	)

	BeforeEach(func() {
		ctx = context.Background()
		dir := GinkgoT().TempDir()
		exportPath = filepath.Join(dir, "projects.csv")

		store, err := db.NewSqliteDB(filepath.Join(dir, "test.db"))
		Expect(err).NotTo(HaveOccurred())
		Expect(repository.Migrate(store)).To(Succeed())

		logger := zap.NewNop().Sugar()
		users := repository.NewUserRepository(store)
		projectStore := repository.NewProjectRepository(store)
		auth := core.NewAuth(logger, users, projectStore, token.NewIssuer([]byte("test-secret")))
		projects = core.NewProjects(logger, projectStore)
		exporter = core.NewExporter(logger, projectStore)

		owner, err = auth.Register(ctx, core.RegisterInput{Username: "alice", Password: "secret"})
		Expect(err).NotTo(HaveOccurred())
	})

	When("the owner has no projects", func() {
		It("reports nothing to export and writes no file", func() {
			err := exporter.ExportCSV(ctx, owner.ID, exportPath)
			Expect(err).To(MatchError(core.ErrNothingToExport))

			_, statErr := os.Stat(exportPath)
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})
	})

	When("the owner has projects", func() {
		BeforeEach(func() {
			inputs := []core.ProjectInput{
				{OwnerID: owner.ID, Name: "thesis", Type: "university", StartDate: "01.02.2024", EndDate: "31.05.2024"},
				{OwnerID: owner.ID, Name: "garden, back yard", Type: "home", EndDate: "15.07.2024", AttachedFilePath: "/tmp/plan.png"},
				{OwnerID: owner.ID, Name: "taxes", Type: "admin", EndDate: "30.04.2024"},
			}
			for _, input := range inputs {
				_, err := projects.Add(ctx, input)
				Expect(err).NotTo(HaveOccurred())
			}
			listed, err := projects.List(ctx, owner.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(projects.SetCompleted(ctx, listed[2].ID, true)).To(Succeed())
		})

		It("writes a header plus one row per project in listing order", func() {
			Expect(exporter.ExportCSV(ctx, owner.ID, exportPath)).To(Succeed())

			file, err := os.Open(exportPath)
			Expect(err).NotTo(HaveOccurred())
			defer file.Close()

			rows, err := csv.NewReader(file).ReadAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(4))

			Expect(rows[0]).To(Equal([]string{"Name", "Type", "StartDate", "EndDate", "Completed", "AttachedFilePath"}))
			Expect(rows[1]).To(Equal([]string{"thesis", "university", "01.02.2024", "31.05.2024", "false", ""}))
			Expect(rows[2]).To(Equal([]string{"garden, back yard", "home", "", "15.07.2024", "false", "/tmp/plan.png"}))
			Expect(rows[3][4]).To(Equal("true"))
		})

		It("overwrites a previous export at the same path", func() {
			Expect(os.WriteFile(exportPath, []byte("stale contents\nwith lines\nand more lines\npadding\npadding\n"), 0o644)).To(Succeed())

			Expect(exporter.ExportCSV(ctx, owner.ID, exportPath)).To(Succeed())

			file, err := os.Open(exportPath)
			Expect(err).NotTo(HaveOccurred())
			defer file.Close()

			rows, err := csv.NewReader(file).ReadAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(4))
		})
	})
})
