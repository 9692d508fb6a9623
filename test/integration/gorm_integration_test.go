package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/RishavSingh2203/freaky-fit/internal/entity"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/specification"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"
	"github.com/RishavSingh2203/freaky-fit/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SubscriptionRepository())
	assert.NotNil(t, uow.SessionRepository())
	assert.NotNil(t, uow.NotificationRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Subscription Quota Increment", func(t *testing.T) {
		ctx := context.Background()

		hash := "not-a-real-hash"
		user := &entity.User{
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			PasswordHash: &hash,
			FullName:     "Integration Test User",
			Role:         entity.UserRoleUser,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		sub := &entity.Subscription{
			UserId:    user.Id,
			Plan:      entity.PlanTierFree,
			Active:    true,
			StartDate: time.Now(),
			EndDate:   time.Now().AddDate(1, 0, 0),
		}
		require.NoError(t, uow.SubscriptionRepository().Create(ctx, sub))

		// Quota is consumed exactly FreeTierQuota times, then rejected.
		for i := 0; i < entity.FreeTierQuota; i++ {
			ok, err := uow.SubscriptionRepository().IncrementUsage(ctx, sub.Id, entity.PlanKindWorkout, entity.FreeTierQuota)
			assert.NoError(t, err)
			assert.True(t, ok)
		}
		ok, err := uow.SubscriptionRepository().IncrementUsage(ctx, sub.Id, entity.PlanKindWorkout, entity.FreeTierQuota)
		assert.NoError(t, err)
		assert.False(t, ok)

		stored, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: sub.Id})
		assert.NoError(t, err)
		assert.Equal(t, entity.FreeTierQuota, stored.WorkoutPlansGenerated)
		assert.Equal(t, 0, stored.MealPlansGenerated)

		// Cleanup
		assert.NoError(t, uow.UserRepository().Delete(ctx, user.Id))
	})

	t.Run("Check Session Lifecycle In Transaction", func(t *testing.T) {
		ctx := context.Background()

		hash := "not-a-real-hash"
		spec := "strength"
		rate := 40.0
		trainer := &entity.User{
			Email:          "trainer-integration-" + uuid.New().String() + "@example.com",
			PasswordHash:   &hash,
			FullName:       "Integration Trainer",
			Role:           entity.UserRoleTrainer,
			Specialization: &spec,
			HourlyRate:     &rate,
			Verified:       true,
		}
		user := &entity.User{
			Email:        "member-integration-" + uuid.New().String() + "@example.com",
			PasswordHash: &hash,
			FullName:     "Integration Member",
			Role:         entity.UserRoleUser,
		}
		require.NoError(t, uow.UserRepository().Create(ctx, trainer))
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		err = uow.Begin(ctx)
		require.NoError(t, err)
		defer uow.Rollback()

		session := &entity.TrainingSession{
			TrainerId:       trainer.Id,
			UserId:          user.Id,
			ScheduledAt:     time.Now().Add(48 * time.Hour),
			DurationMinutes: 60,
			Status:          entity.SessionStatusPending,
		}
		require.NoError(t, uow.SessionRepository().Create(ctx, session))

		session.Status = entity.SessionStatusAccepted
		require.NoError(t, uow.SessionRepository().Update(ctx, session))

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created and accepted a session in a transaction")
	})
}
