package refreshtokenrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/pgtest"
	"ordering/internal/adapters/out/postgres/refreshtokenrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/refreshtoken"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type RefreshTokenRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *refreshtokenrepo.GormRefreshTokenRepository
	now        time.Time
}

func TestRefreshTokenRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RefreshTokenRepositoryIntegrationTestSuite))
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), &refreshtokenrepo.RefreshTokenDTO{})
	suite.Require().NoError(err)
	suite.database = database
	suite.now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("refresh_tokens"))

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = refreshtokenrepo.NewGormRefreshTokenRepository(suite.database.DB, tracker)
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) add(userID, hash string, createdAt time.Time, lifetime time.Duration) *refreshtoken.RefreshToken {
	token, err := refreshtoken.NewRefreshToken(userID, hash, createdAt.Add(lifetime), createdAt,
		refreshtoken.ClientInfo{IP: "10.0.0.1", UserAgent: "test"})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(suite.T().Context(), token))
	return token
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) TestGetByHash_IsCaseInsensitive() {
	token := suite.add("user-1", "abcdef", suite.now, time.Hour)

	loaded, err := suite.repository.GetByHash(suite.T().Context(), "  AbCdEf ")
	suite.Require().NoError(err)
	suite.Equal(token.ID(), loaded.ID())
	suite.Equal("ABCDEF", loaded.TokenHash())
	suite.Equal("10.0.0.1", loaded.CreatedBy().IP)
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) TestGetByHash_Missing_ReturnsNotFound() {
	_, err := suite.repository.GetByHash(suite.T().Context(), "NOPE")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) TestAdd_DuplicateHash_IsPersistenceFailure() {
	suite.add("user-1", "ABC", suite.now, time.Hour)

	token, err := refreshtoken.NewRefreshToken("user-2", "abc", suite.now.Add(time.Hour), suite.now, refreshtoken.ClientInfo{})
	suite.Require().NoError(err)
	suite.ErrorIs(suite.repository.Add(suite.T().Context(), token), errs.ErrPersistenceFailure)
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) TestUpdate_PersistsRevocation() {
	ctx := suite.T().Context()
	token := suite.add("user-1", "OLD", suite.now, time.Hour)

	revokedAt := suite.now.Add(time.Minute)
	suite.Require().True(token.Revoke(revokedAt, "new", refreshtoken.ClientInfo{IP: "10.0.0.2"}))
	suite.Require().NoError(suite.repository.Update(ctx, token))

	loaded, err := suite.repository.GetByHash(ctx, "OLD")
	suite.Require().NoError(err)
	suite.True(loaded.IsRevoked())
	suite.Require().NotNil(loaded.RevokedAtUTC())
	suite.True(revokedAt.Equal(*loaded.RevokedAtUTC()))
	suite.Equal("NEW", loaded.ReplacedByTokenHash())
	suite.Equal("10.0.0.2", loaded.RevokedBy().IP)
	suite.False(loaded.IsActive(revokedAt))
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) TestUpdate_RevokingAnAlreadyRevokedRow_IsPersistenceFailure() {
	ctx := suite.T().Context()
	suite.add("user-1", "H0", suite.now, time.Hour)

	first, err := suite.repository.GetByHash(ctx, "H0")
	suite.Require().NoError(err)
	second, err := suite.repository.GetByHash(ctx, "H0")
	suite.Require().NoError(err)

	revokedAt := suite.now.Add(time.Minute)
	suite.Require().True(first.Revoke(revokedAt, "HA", refreshtoken.ClientInfo{}))
	suite.Require().True(second.Revoke(revokedAt, "HB", refreshtoken.ClientInfo{}))

	suite.Require().NoError(suite.repository.Update(ctx, first))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrPersistenceFailure)
	suite.ErrorIs(err, refreshtokenrepo.ErrTokenAlreadyRevoked)

	loaded, err := suite.repository.GetByHash(ctx, "H0")
	suite.Require().NoError(err)
	suite.Equal("HA", loaded.ReplacedByTokenHash())
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) TestUpdate_MissingRow_IsNotFound() {
	token, err := refreshtoken.NewRefreshToken("user-1", "GHOST", suite.now.Add(time.Hour), suite.now, refreshtoken.ClientInfo{})
	suite.Require().NoError(err)
	suite.Require().True(token.Revoke(suite.now, "", refreshtoken.ClientInfo{}))

	suite.ErrorIs(suite.repository.Update(suite.T().Context(), token), errs.ErrObjectNotFound)
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) TestGetLatestActiveForUser() {
	ctx := suite.T().Context()
	suite.add("user-1", "FIRST", suite.now, time.Hour)
	latest := suite.add("user-1", "SECOND", suite.now.Add(time.Minute), time.Hour)
	suite.add("user-1", "SHORT", suite.now.Add(2*time.Minute), time.Second)
	suite.add("user-2", "OTHER", suite.now.Add(3*time.Minute), time.Hour)

	found, err := suite.repository.GetLatestActiveForUser(ctx, "user-1", suite.now.Add(5*time.Minute))
	suite.Require().NoError(err)
	suite.Equal(latest.ID(), found.ID())

	_, err = suite.repository.GetLatestActiveForUser(ctx, "user-3", suite.now)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetLatestActiveForUser(ctx, "USER-1", suite.now)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	found, err = suite.repository.GetLatestActiveForUser(ctx, " user-1 ", suite.now.Add(5*time.Minute))
	suite.Require().NoError(err)
	suite.Equal(latest.ID(), found.ID())
}

func (suite *RefreshTokenRepositoryIntegrationTestSuite) TestStats_RevokedWinsOverExpired() {
	ctx := suite.T().Context()
	suite.add("user-1", "ACTIVE", suite.now, time.Hour)
	suite.add("user-1", "EXPIRED", suite.now, time.Minute)
	revoked := suite.add("user-1", "REVOKED", suite.now, time.Minute)
	suite.Require().True(revoked.Revoke(suite.now, "", refreshtoken.ClientInfo{}))
	suite.Require().NoError(suite.repository.Update(ctx, revoked))

	stats, err := suite.repository.Stats(ctx, suite.now.Add(10*time.Minute))
	suite.Require().NoError(err)
	suite.Equal(ports.RefreshTokenStats{Active: 1, Revoked: 1, Expired: 1}, stats)
}
