package sql_test

import (
	"context"
	"smokeguard-server/internal/infra/sql"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/gorm/clause"
)

type probe struct {
	Code  string `gorm:"primaryKey"`
	Label string
	Hits  int
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(orm.AutoMigrate(&probe{})).To(gomega.Succeed())
		ctx = context.Background()
	})

	ginkgo.Context("NewMemoryORM", func() {
		ginkgo.It("should isolate databases between instances", func() {
			err := orm.WithContext(ctx).Create(&probe{Code: "a", Label: "first"}).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			other, err := sql.NewMemoryORM()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(other.AutoMigrate(&probe{})).To(gomega.Succeed())

			var count int64
			err = other.WithContext(ctx).Model(&probe{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})

	ginkgo.Context("First", func() {
		ginkgo.When("the row does not exist", func() {
			ginkgo.It("should return ErrRecordNotFound", func() {
				var row probe
				err := orm.WithContext(ctx).Where("code = ?", "missing").First(&row).Error()
				gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
			})
		})
	})

	ginkgo.Context("Clauses", func() {
		ginkgo.When("upserting with a restricted column set", func() {
			ginkgo.It("should only update the listed columns", func() {
				err := orm.WithContext(ctx).Create(&probe{Code: "k", Label: "kept", Hits: 1}).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				err = orm.WithContext(ctx).
					Clauses(clause.OnConflict{
						Columns:   []clause.Column{{Name: "code"}},
						DoUpdates: clause.AssignmentColumns([]string{"hits"}),
					}).
					Create(&probe{Code: "k", Label: "ignored", Hits: 2}).
					Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				var row probe
				err = orm.WithContext(ctx).Where("code = ?", "k").First(&row).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(row.Label).To(gomega.Equal("kept"))
				gomega.Expect(row.Hits).To(gomega.Equal(2))
			})
		})
	})

	ginkgo.Context("WithTimeout", func() {
		ginkgo.It("should complete operations within timeout", func() {
			var count int64
			err := orm.WithTimeout(ctx, 2*time.Second).Model(&probe{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})

		ginkgo.It("should fail when the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			var count int64
			err := orm.WithContext(cancelled).Model(&probe{}).Count(&count).Error()
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})
