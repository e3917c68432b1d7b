package drive_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	entity "github.com/KirkDiggler/drive-api/internal/entities/drive"
	"github.com/KirkDiggler/drive-api/internal/errors"
	"github.com/KirkDiggler/drive-api/internal/forms/driveform"
	"github.com/KirkDiggler/drive-api/internal/repositories/drive"
	"github.com/KirkDiggler/drive-api/internal/testutils"
)

type RedisDriveTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo drive.Repository
	ctx  context.Context
}

func (s *RedisDriveTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	repo, err := drive.NewRedis(&drive.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisDriveTestSuite) createPieces(ids ...string) {
	for i, id := range ids {
		piece := testutils.CreateTestPiece(id)
		piece.CreatedAt = testutils.TestTime.Add(time.Duration(i) * time.Minute)
		_, err := s.repo.Create(s.ctx, drive.CreateInput{Piece: piece})
		s.Require().NoError(err)
	}
}

func (s *RedisDriveTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *drive.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &drive.RedisConfig{}, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := drive.NewRedis(tc.config)
			s.Require().Error(err)
			s.Nil(repo)
			s.Contains(err.Error(), tc.errMsg)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisDriveTestSuite) TestCreateAndGet() {
	piece := testutils.CreateTestPiece(testutils.TestDriveID)

	out, err := s.repo.Create(s.ctx, drive.CreateInput{Piece: piece})
	s.Require().NoError(err)
	s.Equal(piece, out.Piece)

	s.True(s.mr.Exists(drive.GetKey(testutils.TestDriveID)))

	got, err := s.repo.Get(s.ctx, drive.GetInput{ID: testutils.TestDriveID})
	s.Require().NoError(err)
	s.Equal(piece.SetName, got.Piece.SetName)
	s.Equal(piece.MainStat, got.Piece.MainStat)
	s.Equal(piece.SubstatNames(), got.Piece.SubstatNames())
	s.True(piece.CreatedAt.Equal(got.Piece.CreatedAt))
}

func (s *RedisDriveTestSuite) TestCreateErrors() {
	s.Run("nil piece", func() {
		_, err := s.repo.Create(s.ctx, drive.CreateInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("empty id", func() {
		_, err := s.repo.Create(s.ctx, drive.CreateInput{Piece: &entity.Piece{}})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("duplicate id", func() {
		s.createPieces("drive_dup")
		_, err := s.repo.Create(s.ctx, drive.CreateInput{Piece: testutils.CreateTestPiece("drive_dup")})
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *RedisDriveTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, drive.GetInput{ID: "drive_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("drive_missing", errors.GetMeta(err)["drive_id"])
}

func (s *RedisDriveTestSuite) TestUpdate() {
	s.createPieces(testutils.TestDriveID)

	s.Run("replaces stored drive", func() {
		piece := testutils.CreateTestPieceWithSubstats(testutils.TestDriveID, 4, driveform.StatCritRate,
			driveform.StatATKPercent, driveform.StatPEN, driveform.StatHP, driveform.StatDEF)
		piece.TotalUpgrades = 2

		_, err := s.repo.Update(s.ctx, drive.UpdateInput{Piece: piece})
		s.Require().NoError(err)

		got, err := s.repo.Get(s.ctx, drive.GetInput{ID: testutils.TestDriveID})
		s.Require().NoError(err)
		s.Equal(4, got.Piece.Position)
		s.Equal(driveform.StatCritRate, got.Piece.MainStat)
		s.Equal(2, got.Piece.TotalUpgrades)
		s.Len(got.Piece.Substats, 4)
	})

	s.Run("missing drive", func() {
		_, err := s.repo.Update(s.ctx, drive.UpdateInput{Piece: testutils.CreateTestPiece("drive_missing")})
		s.True(errors.IsNotFound(err))
		s.False(s.mr.Exists(drive.GetKey("drive_missing")))
	})
}

func (s *RedisDriveTestSuite) TestDelete() {
	s.createPieces("drive_a", "drive_b")

	_, err := s.repo.Delete(s.ctx, drive.DeleteInput{ID: "drive_a"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, drive.GetInput{ID: "drive_a"})
	s.True(errors.IsNotFound(err))

	members, err := s.mr.ZMembers("drive:pieces")
	s.Require().NoError(err)
	s.Equal([]string{"drive_b"}, members)

	_, err = s.repo.Delete(s.ctx, drive.DeleteInput{ID: "drive_a"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisDriveTestSuite) TestList() {
	s.createPieces("drive_1", "drive_2", "drive_3", "drive_4", "drive_5")

	testCases := []struct {
		name    string
		input   drive.ListInput
		wantIDs []string
	}{
		{name: "first page newest first", input: drive.ListInput{Offset: 0, Limit: 2}, wantIDs: []string{"drive_5", "drive_4"}},
		{name: "middle page", input: drive.ListInput{Offset: 2, Limit: 2}, wantIDs: []string{"drive_3", "drive_2"}},
		{name: "last partial page", input: drive.ListInput{Offset: 4, Limit: 2}, wantIDs: []string{"drive_1"}},
		{name: "past the end", input: drive.ListInput{Offset: 10, Limit: 2}, wantIDs: []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.List(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(5, out.Total)

			ids := make([]string, 0, len(out.Pieces))
			for _, p := range out.Pieces {
				ids = append(ids, p.ID)
			}
			s.Equal(tc.wantIDs, ids)
		})
	}
}

func (s *RedisDriveTestSuite) TestListInvalidWindow() {
	_, err := s.repo.List(s.ctx, drive.ListInput{Offset: -1, Limit: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, drive.ListInput{Offset: 0, Limit: 0})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisDriveTestSuite) TestListCleansDanglingIndexEntries() {
	s.createPieces("drive_1", "drive_2", "drive_3")
	s.mr.Del(drive.GetKey("drive_2"))

	out, err := s.repo.List(s.ctx, drive.ListInput{Offset: 0, Limit: 10})
	s.Require().NoError(err)
	s.Len(out.Pieces, 2)
	s.Equal(2, out.Total)

	members, err := s.mr.ZMembers("drive:pieces")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"drive_1", "drive_3"}, members)
}

func (s *RedisDriveTestSuite) TestListAll() {
	s.Run("empty store", func() {
		out, err := s.repo.ListAll(s.ctx, drive.ListAllInput{})
		s.Require().NoError(err)
		s.Empty(out.Pieces)
	})

	s.Run("returns every drive newest first", func() {
		s.createPieces("drive_1", "drive_2", "drive_3")

		out, err := s.repo.ListAll(s.ctx, drive.ListAllInput{})
		s.Require().NoError(err)
		s.Require().Len(out.Pieces, 3)
		s.Equal("drive_3", out.Pieces[0].ID)
		s.Equal("drive_1", out.Pieces[2].ID)
	})
}

func TestRedisDriveTestSuite(t *testing.T) {
	suite.Run(t, new(RedisDriveTestSuite))
}
