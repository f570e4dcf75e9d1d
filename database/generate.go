package database

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GenerateModels migrates the schema with verbose SQL logging, reports column
// drift and writes typed gorm/gen query code for every model into outPath.
func GenerateModels(ctx context.Context, db *gorm.DB, outPath string) error {
	verbose := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{LogLevel: logger.Info, Colorful: true},
	)
	db = db.Session(&gorm.Session{Logger: verbose, SkipDefaultTransaction: true})

	if err := db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}
	if err := Migrate(db); err != nil {
		return err
	}

	drift, err := SchemaDrift(ctx, db)
	if err != nil {
		return err
	}
	for table, columns := range drift {
		fmt.Printf("table %s has columns without a model field: %v\n", table, columns)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(models.All()...)
	g.Execute()
	return nil
}
