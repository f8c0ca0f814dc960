package repository

import "fmt"

type migration struct {
	version int
	name    string
	run     func(db Database) error
}

// Schema evolution is a fixed sequence of idempotent steps. The column steps
// exist for stores created before those columns were introduced and are
// explicit no-ops once the column is present.
var migrations = []migration{
	{
		version: 1,
		name:    "create users and projects tables",
		run: func(db Database) error {
			return db.MigrateModels(&User{}, &Project{})
		},
	},
	{
		version: 2,
		name:    "add users.role",
		run:     ensureColumn(&User{}, "Role"),
	},
	{
		version: 3,
		name:    "add projects.attached_file_path",
		run:     ensureColumn(&Project{}, "AttachedFilePath"),
	},
}

func Migrate(db Database) error {
	for _, m := range migrations {
		if err := m.run(db); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
	}
	return nil
}

func ensureColumn(model any, field string) func(db Database) error {
	return func(db Database) error {
		if db.HasColumn(model, field) {
			return nil
		}
		return db.AddColumn(model, field)
	}
}
