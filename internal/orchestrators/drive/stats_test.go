package drive_test

import (
	entity "github.com/KirkDiggler/drive-api/internal/entities/drive"
	"github.com/KirkDiggler/drive-api/internal/errors"
	"github.com/KirkDiggler/drive-api/internal/forms/driveform"
	"github.com/KirkDiggler/drive-api/internal/orchestrators/drive"
	"github.com/KirkDiggler/drive-api/internal/repositories/catalog"
	driverepo "github.com/KirkDiggler/drive-api/internal/repositories/drive"
	"github.com/KirkDiggler/drive-api/internal/testutils"
)

// statsCollection is four drives:
//
//	a: slot 1, 暴击 暴击伤害 攻击力百分比, +0
//	b: slot 2, 暴击 暴击伤害 穿透值 防御力, +2
//	c: slot 4, 暴击 生命值 防御力, +0
//	d: slot 4, 攻击力 生命值 防御力 异常精通, +5
func statsCollection() []*entity.Piece {
	a := testutils.CreateTestPieceWithSubstats("drive_a", 1, driveform.StatHP,
		driveform.StatCritRate, driveform.StatCritDMG, driveform.StatATKPercent)

	b := testutils.CreateTestPieceWithSubstats("drive_b", 2, driveform.StatATK,
		driveform.StatCritRate, driveform.StatCritDMG, driveform.StatPEN, driveform.StatDEF)
	b.SetName = "电镀音潮"
	b.TotalUpgrades = 2

	c := testutils.CreateTestPieceWithSubstats("drive_c", 4, driveform.StatCritDMG,
		driveform.StatCritRate, driveform.StatHP, driveform.StatDEF)

	d := testutils.CreateTestPieceWithSubstats("drive_d", 4, driveform.StatATKPercent,
		driveform.StatATK, driveform.StatHP, driveform.StatDEF, driveform.StatAnomalyProf)
	d.TotalUpgrades = 5

	return []*entity.Piece{a, b, c, d}
}

func (s *OrchestratorTestSuite) TestGetStatistics() {
	s.driveRepo.EXPECT().
		ListAll(s.ctx, driverepo.ListAllInput{}).
		Return(&driverepo.ListAllOutput{Pieces: statsCollection()}, nil)

	out, err := s.orch.GetStatistics(s.ctx, &drive.GetStatisticsInput{})
	s.Require().NoError(err)
	stats := out.Statistics

	s.Equal(4, stats.TotalPieces)
	s.Equal(2, stats.TotalSets)
	s.Equal(3.5, stats.AvgSubstats)
	s.Equal(map[string]int{"1号位": 1, "2号位": 1, "4号位": 2}, stats.PositionDistribution)
	s.Equal(map[string]int{testutils.TestSetName: 3, "电镀音潮": 1}, stats.SetDistribution)
	s.Equal(map[string]int{"+0": 2, "+2": 1, "+5": 1}, stats.UpgradeDistribution)
	s.Equal(map[int]int{3: 2, 4: 2}, stats.SubstatCountDistribution)

	s.Len(stats.MainStats, 6)
	s.Empty(stats.MainStats["6号位"])
	s.Equal(map[string]int{driveform.StatCritDMG: 1, driveform.StatATKPercent: 1}, stats.MainStats["4号位"])

	s.Equal(3, stats.SubstatFrequency[driveform.StatCritRate].Count)
	s.Equal(75.0, stats.SubstatFrequency[driveform.StatCritRate].Percentage)
	s.Equal(25.0, stats.SubstatFrequency[driveform.StatAnomalyProf].Percentage)
	s.Equal(testutils.TestTime, stats.LastUpdated)
}

func (s *OrchestratorTestSuite) TestGetStatisticsEmpty() {
	s.driveRepo.EXPECT().
		ListAll(s.ctx, driverepo.ListAllInput{}).
		Return(&driverepo.ListAllOutput{Pieces: []*entity.Piece{}}, nil)

	out, err := s.orch.GetStatistics(s.ctx, &drive.GetStatisticsInput{})
	s.Require().NoError(err)
	s.Zero(out.Statistics.TotalPieces)
	s.Zero(out.Statistics.AvgSubstats)
	s.Len(out.Statistics.MainStats, 6)
}

func (s *OrchestratorTestSuite) TestCalculatePairing() {
	s.Run("compares actual and independent rates", func() {
		selected := []string{driveform.StatCritRate, driveform.StatCritDMG}
		s.expectKnownStats(selected...)
		s.driveRepo.EXPECT().
			ListAll(s.ctx, driverepo.ListAllInput{}).
			Return(&driverepo.ListAllOutput{Pieces: statsCollection()}, nil)

		out, err := s.orch.CalculatePairing(s.ctx, &drive.CalculatePairingInput{SelectedStats: selected})
		s.Require().NoError(err)
		p := out.Pairing

		// 暴击 3/4, 暴击伤害 2/4, both on a and b
		s.Equal(map[string]float64{driveform.StatCritRate: 75, driveform.StatCritDMG: 50}, p.IndividualProbabilities)
		s.Equal(37.5, p.Theoretical)
		s.Equal(50.0, p.Actual)
		s.Equal(12.5, p.Difference)
		s.Equal(2, p.MatchCount)
		s.Equal(4, p.TotalPieces)
		s.Equal(2, p.Expectation)
		s.Equal(selected, p.SelectedStats)
		s.Require().Len(p.MatchingExamples, 2)
		s.Equal("drive_a", p.MatchingExamples[0].DriveID)
		s.Equal(2, p.MatchingExamples[1].Position)
	})

	s.Run("no match", func() {
		selected := []string{driveform.StatAnomalyProf, driveform.StatPEN}
		s.expectKnownStats(selected...)
		s.driveRepo.EXPECT().
			ListAll(s.ctx, driverepo.ListAllInput{}).
			Return(&driverepo.ListAllOutput{Pieces: statsCollection()}, nil)

		out, err := s.orch.CalculatePairing(s.ctx, &drive.CalculatePairingInput{SelectedStats: selected})
		s.Require().NoError(err)
		s.Equal(6.25, out.Pairing.Theoretical)
		s.Zero(out.Pairing.Actual)
		s.Equal(-6.25, out.Pairing.Difference)
		s.Zero(out.Pairing.Expectation)
		s.Empty(out.Pairing.MatchingExamples)
	})

	s.Run("no drives stored", func() {
		s.expectKnownStats(driveform.StatCritRate)
		s.driveRepo.EXPECT().
			ListAll(s.ctx, driverepo.ListAllInput{}).
			Return(&driverepo.ListAllOutput{Pieces: []*entity.Piece{}}, nil)

		_, err := s.orch.CalculatePairing(s.ctx, &drive.CalculatePairingInput{SelectedStats: []string{driveform.StatCritRate}})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("unknown stat", func() {
		s.catalogRepo.EXPECT().
			HasStatTypes(s.ctx, catalog.HasStatTypesInput{Names: []string{"幸运"}}).
			Return(&catalog.HasStatTypesOutput{Unknown: []string{"幸运"}}, nil)

		_, err := s.orch.CalculatePairing(s.ctx, &drive.CalculatePairingInput{SelectedStats: []string{"幸运"}})
		s.True(errors.IsInvalidArgument(err))
	})

	testCases := []struct {
		name     string
		selected []string
	}{
		{name: "nothing selected", selected: nil},
		{name: "too many selected", selected: []string{
			driveform.StatHP, driveform.StatATK, driveform.StatDEF, driveform.StatPEN, driveform.StatCritRate,
		}},
		{name: "duplicate selection", selected: []string{driveform.StatHP, driveform.StatHP}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orch.CalculatePairing(s.ctx, &drive.CalculatePairingInput{SelectedStats: tc.selected})
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
