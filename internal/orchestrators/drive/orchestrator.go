// Package drive implements the drive orchestrator: storing, editing and
// upgrading drives, validated through the drive form engine.
package drive

//go:generate mockgen -destination=mock/mock_service.go -package=drivemock github.com/KirkDiggler/drive-api/internal/orchestrators/drive Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	entity "github.com/KirkDiggler/drive-api/internal/entities/drive"
	"github.com/KirkDiggler/drive-api/internal/errors"
	"github.com/KirkDiggler/drive-api/internal/forms/driveform"
	"github.com/KirkDiggler/drive-api/internal/pkg/clock"
	"github.com/KirkDiggler/drive-api/internal/pkg/idgen"
	"github.com/KirkDiggler/drive-api/internal/repositories/catalog"
	driverepo "github.com/KirkDiggler/drive-api/internal/repositories/drive"
)

// Service defines the interface for drive operations
type Service interface {
	// Form engine
	CheckForm(ctx context.Context, input *CheckFormInput) (*CheckFormOutput, error)
	ListSlotRules(ctx context.Context, input *ListSlotRulesInput) (*ListSlotRulesOutput, error)

	// Drive lifecycle
	CreateDrive(ctx context.Context, input *CreateDriveInput) (*CreateDriveOutput, error)
	GetDrive(ctx context.Context, input *GetDriveInput) (*GetDriveOutput, error)
	ListDrives(ctx context.Context, input *ListDrivesInput) (*ListDrivesOutput, error)
	UpdateDrive(ctx context.Context, input *UpdateDriveInput) (*UpdateDriveOutput, error)
	UpgradeDrive(ctx context.Context, input *UpgradeDriveInput) (*UpgradeDriveOutput, error)
	DowngradeDrive(ctx context.Context, input *DowngradeDriveInput) (*DowngradeDriveOutput, error)
	DeleteDrive(ctx context.Context, input *DeleteDriveInput) (*DeleteDriveOutput, error)

	// Catalog
	ListSetTypes(ctx context.Context, input *ListSetTypesInput) (*ListSetTypesOutput, error)
	ListStatTypes(ctx context.Context, input *ListStatTypesInput) (*ListStatTypesOutput, error)
	SeedCatalog(ctx context.Context, input *SeedCatalogInput) (*SeedCatalogOutput, error)

	// Statistics
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error)
	CalculatePairing(ctx context.Context, input *CalculatePairingInput) (*CalculatePairingOutput, error)
}

// Config holds the dependencies for the drive orchestrator
type Config struct {
	DriveRepo   driverepo.Repository
	CatalogRepo catalog.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	DiceRoller  dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.DriveRepo == nil {
		vb.RequiredField("DriveRepo")
	}
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

type orchestrator struct {
	driveRepo   driverepo.Repository
	catalogRepo catalog.Repository
	idGen       idgen.Generator
	clock       clock.Clock
	roller      dice.Roller
}

// NewOrchestrator creates a new drive orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		driveRepo:   cfg.DriveRepo,
		catalogRepo: cfg.CatalogRepo,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		roller:      cfg.DiceRoller,
	}, nil
}

// CheckForm runs the requested edits through the form engine and reports the result
func (o *orchestrator) CheckForm(_ context.Context, input *CheckFormInput) (*CheckFormOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	form := driveform.New()
	if input.Form != nil {
		form = input.Form.Clone()
	}

	if input.NewSlot != nil {
		form.SetSlot(*input.NewSlot)
	}
	if input.NewPrimaryAttribute != nil {
		form.SetPrimaryAttribute(*input.NewPrimaryAttribute)
	}

	problems := form.Problems()
	if problems == nil {
		problems = []driveform.Problem{}
	}

	return &CheckFormOutput{
		Report: &FormReport{
			Form:           form,
			Valid:          form.IsValid(),
			Problems:       problems,
			Hint:           form.DescribeSlotConstraint(),
			LegalPrimaries: form.LegalPrimaries(),
			Secondaries:    driveform.AllSecondaryAttributes(),
		},
	}, nil
}

// ListSlotRules returns the primary attribute rule of every slot
func (o *orchestrator) ListSlotRules(_ context.Context, _ *ListSlotRulesInput) (*ListSlotRulesOutput, error) {
	slots := driveform.Slots()
	rules := make([]*SlotRule, 0, len(slots))
	for _, slot := range slots {
		form := driveform.New()
		form.SetSlot(slot)
		rules = append(rules, &SlotRule{
			Slot:           slot,
			Fixed:          driveform.IsFixedSlot(slot),
			LegalPrimaries: driveform.LegalPrimariesFor(slot),
			Hint:           form.DescribeSlotConstraint(),
		})
	}

	return &ListSlotRulesOutput{
		Rules:       rules,
		Secondaries: driveform.AllSecondaryAttributes(),
	}, nil
}

// CreateDrive validates a drive through the form engine and the catalog, then stores it
func (o *orchestrator) CreateDrive(ctx context.Context, input *CreateDriveInput) (*CreateDriveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	form := &driveform.Form{
		SetName:             input.SetName,
		Slot:                input.Position,
		PrimaryAttribute:    input.MainStat,
		SecondaryAttributes: input.Substats,
	}

	vb := errors.NewValidationBuilder()
	for _, problem := range form.Problems() {
		vb.Field(problem.Field(), problemMessage(problem))
	}
	validateSubstatNames(input.Substats, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := o.validateAgainstCatalog(ctx, input.SetName, input.MainStat, input.Substats); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	piece := &entity.Piece{
		ID:            o.idGen.Generate(),
		SetName:       input.SetName,
		Position:      input.Position,
		MainStat:      input.MainStat,
		MainStatLevel: entity.DefaultMainStatLevel,
		TotalUpgrades: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	replaceSubstats(piece, input.Substats)

	if _, err := o.driveRepo.Create(ctx, driverepo.CreateInput{Piece: piece}); err != nil {
		return nil, errors.Wrap(err, "failed to create drive")
	}

	slog.InfoContext(ctx, "drive created",
		"drive_id", piece.ID,
		"set_name", piece.SetName,
		"position", piece.Position,
		"main_stat", piece.MainStat,
		"substats", len(piece.Substats))

	return &CreateDriveOutput{Piece: piece}, nil
}

// GetDrive retrieves a drive by ID
func (o *orchestrator) GetDrive(ctx context.Context, input *GetDriveInput) (*GetDriveOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("drive ID is required")
	}

	out, err := o.driveRepo.Get(ctx, driverepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get drive")
	}

	return &GetDriveOutput{Piece: out.Piece}, nil
}

// ListDrives returns one page of drives, newest first
func (o *orchestrator) ListDrives(ctx context.Context, input *ListDrivesInput) (*ListDrivesOutput, error) {
	if input == nil {
		input = &ListDrivesInput{}
	}

	page := input.Page
	if page < 1 {
		page = DefaultPage
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	out, err := o.driveRepo.List(ctx, driverepo.ListInput{
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drives")
	}

	totalPages := 0
	if out.Total > 0 {
		totalPages = (out.Total + perPage - 1) / perPage
	}

	return &ListDrivesOutput{
		Pieces: out.Pieces,
		Pagination: &Pagination{
			CurrentPage: page,
			PerPage:     perPage,
			TotalItems:  out.Total,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrev:     page > 1,
		},
	}, nil
}

// UpdateDrive changes the main stat and/or replaces the substats of a drive.
// Replacing substats resets the upgrade progress.
func (o *orchestrator) UpdateDrive(ctx context.Context, input *UpdateDriveInput) (*UpdateDriveOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("drive ID is required")
	}

	vb := errors.NewValidationBuilder()
	if input.MainStat != nil {
		errors.ValidateRequired("main_stat_name", *input.MainStat, vb)
	}
	if input.Substats != nil {
		errors.ValidateCount("substats", len(input.Substats), 1, entity.MaxSubstats, vb)
		validateSubstatNames(input.Substats, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.driveRepo.Get(ctx, driverepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get drive")
	}
	piece := got.Piece

	var names []string
	if input.MainStat != nil {
		if !driveform.IsLegalPrimary(piece.Position, *input.MainStat) {
			return nil, errors.NewValidationBuilder().
				Fieldf("main_stat_name", "%s is not a legal main stat for position %d", *input.MainStat, piece.Position).
				Build()
		}
		names = append(names, *input.MainStat)
	}
	names = append(names, input.Substats...)

	if err := o.validateStatNames(ctx, names); err != nil {
		return nil, err
	}

	if input.MainStat != nil {
		piece.MainStat = *input.MainStat
	}
	if input.Substats != nil {
		replaceSubstats(piece, input.Substats)
		piece.TotalUpgrades = 0
	}
	piece.UpdatedAt = o.clock.Now()

	if _, err := o.driveRepo.Update(ctx, driverepo.UpdateInput{Piece: piece}); err != nil {
		return nil, errors.Wrap(err, "failed to update drive")
	}

	slog.InfoContext(ctx, "drive updated",
		"drive_id", piece.ID,
		"main_stat", piece.MainStat,
		"substats", len(piece.Substats),
		"total_upgrades", piece.TotalUpgrades)

	return &UpdateDriveOutput{Piece: piece}, nil
}

// UpgradeDrive applies one upgrade step: a new substat line or one more roll on an existing line
func (o *orchestrator) UpgradeDrive(ctx context.Context, input *UpgradeDriveInput) (*UpgradeDriveOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("drive ID is required")
	}

	switch input.Type {
	case entity.UpgradeNew, entity.UpgradeExisting:
	default:
		return nil, errors.InvalidArgumentf("invalid upgrade type: %q", input.Type).
			WithMeta("allowed", []string{string(entity.UpgradeNew), string(entity.UpgradeExisting)})
	}

	got, err := o.driveRepo.Get(ctx, driverepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get drive")
	}
	piece := got.Piece

	if piece.IsMaxed() {
		return nil, errors.FailedPreconditionf("drive %s is already fully upgraded", piece.ID).
			WithMeta("total_upgrades", piece.TotalUpgrades)
	}

	var result *UpgradeResult
	if input.Type == entity.UpgradeNew {
		result, err = o.addSubstat(ctx, piece, input.NewSubstatName)
	} else {
		result, err = upgradeSubstat(piece, input.SubstatID)
	}
	if err != nil {
		return nil, err
	}

	piece.TotalUpgrades++
	piece.UpdatedAt = o.clock.Now()
	result.TotalUpgrades = piece.TotalUpgrades

	if _, err := o.driveRepo.Update(ctx, driverepo.UpdateInput{Piece: piece}); err != nil {
		return nil, errors.Wrap(err, "failed to update drive")
	}

	slog.InfoContext(ctx, "drive upgraded",
		"drive_id", piece.ID,
		"type", result.Type,
		"substat", result.SubstatName,
		"upgrade_count", result.UpgradeCount,
		"total_upgrades", piece.TotalUpgrades)

	return &UpgradeDriveOutput{Piece: piece, Result: result}, nil
}

// addSubstat appends a new, non-original substat line. An empty name rolls
// one of the known stats the drive does not carry yet.
func (o *orchestrator) addSubstat(ctx context.Context, piece *entity.Piece, name string) (*UpgradeResult, error) {
	if len(piece.Substats) >= entity.MaxSubstats {
		return nil, errors.FailedPreconditionf("drive %s already has %d substats", piece.ID, entity.MaxSubstats)
	}

	if name != "" {
		if err := o.validateStatNames(ctx, []string{name}); err != nil {
			return nil, err
		}
		if piece.HasStat(name) {
			return nil, errors.InvalidArgumentf("substat %s already exists on drive", name).
				WithMeta("new_substat_name", name)
		}
	} else {
		rolled, err := o.rollNewSubstat(ctx, piece)
		if err != nil {
			return nil, err
		}
		name = rolled
	}

	// A fresh drive with three lines gains its fourth line at level zero
	upgradeCount := 1
	if piece.TotalUpgrades == 0 && len(piece.Substats) == driveform.MinSecondaries {
		upgradeCount = 0
	}

	piece.NextSubstatSeq++
	substat := &entity.Substat{
		ID:           idgen.SubstatID(piece.ID, piece.NextSubstatSeq),
		Name:         name,
		UpgradeCount: upgradeCount,
		IsOriginal:   false,
	}
	piece.Substats = append(piece.Substats, substat)

	return &UpgradeResult{
		Type:         ResultNewSubstat,
		SubstatID:    substat.ID,
		SubstatName:  substat.Name,
		UpgradeCount: substat.UpgradeCount,
	}, nil
}

func (o *orchestrator) rollNewSubstat(ctx context.Context, piece *entity.Piece) (string, error) {
	stats, err := o.catalogRepo.ListStatTypes(ctx, catalog.ListStatTypesInput{})
	if err != nil {
		return "", errors.Wrap(err, "failed to list stat types")
	}

	var candidates []string
	for _, stat := range stats.Stats {
		if !piece.HasStat(stat) {
			candidates = append(candidates, stat)
		}
	}
	if len(candidates) == 0 {
		return "", errors.FailedPreconditionf("no substat available for drive %s", piece.ID)
	}

	roll, err := o.roller.Roll(len(candidates))
	if err != nil {
		return "", errors.Wrap(err, "failed to roll new substat")
	}
	if roll < 1 || roll > len(candidates) {
		return "", errors.Internalf("dice roll %d out of range 1..%d", roll, len(candidates))
	}

	slog.DebugContext(ctx, "rolled new substat",
		"drive_id", piece.ID,
		"candidates", len(candidates),
		"roll", roll)

	return candidates[roll-1], nil
}

func upgradeSubstat(piece *entity.Piece, substatID string) (*UpgradeResult, error) {
	substat, err := findSubstat(piece, substatID)
	if err != nil {
		return nil, err
	}

	substat.UpgradeCount++

	return &UpgradeResult{
		Type:         ResultUpgradeExisting,
		SubstatID:    substat.ID,
		SubstatName:  substat.Name,
		UpgradeCount: substat.UpgradeCount,
	}, nil
}

// DowngradeDrive undoes one upgrade step on a substat line
func (o *orchestrator) DowngradeDrive(ctx context.Context, input *DowngradeDriveInput) (*DowngradeDriveOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("drive ID is required")
	}

	got, err := o.driveRepo.Get(ctx, driverepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get drive")
	}
	piece := got.Piece

	substat, err := findSubstat(piece, input.SubstatID)
	if err != nil {
		return nil, err
	}
	if substat.UpgradeCount <= 0 {
		return nil, errors.FailedPreconditionf("substat %s has no upgrades to undo", substat.Name).
			WithMeta("substat_id", substat.ID)
	}

	substat.UpgradeCount--
	if piece.TotalUpgrades > 0 {
		piece.TotalUpgrades--
	}
	piece.UpdatedAt = o.clock.Now()

	if _, err := o.driveRepo.Update(ctx, driverepo.UpdateInput{Piece: piece}); err != nil {
		return nil, errors.Wrap(err, "failed to update drive")
	}

	slog.InfoContext(ctx, "drive downgraded",
		"drive_id", piece.ID,
		"substat", substat.Name,
		"upgrade_count", substat.UpgradeCount,
		"total_upgrades", piece.TotalUpgrades)

	return &DowngradeDriveOutput{
		Piece: piece,
		Result: &UpgradeResult{
			Type:          ResultDowngrade,
			SubstatID:     substat.ID,
			SubstatName:   substat.Name,
			UpgradeCount:  substat.UpgradeCount,
			TotalUpgrades: piece.TotalUpgrades,
		},
	}, nil
}

// DeleteDrive removes a drive
func (o *orchestrator) DeleteDrive(ctx context.Context, input *DeleteDriveInput) (*DeleteDriveOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("drive ID is required")
	}

	if _, err := o.driveRepo.Delete(ctx, driverepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete drive")
	}

	slog.InfoContext(ctx, "drive deleted", "drive_id", input.ID)

	return &DeleteDriveOutput{}, nil
}

// ListSetTypes returns the catalog's set types
func (o *orchestrator) ListSetTypes(ctx context.Context, _ *ListSetTypesInput) (*ListSetTypesOutput, error) {
	out, err := o.catalogRepo.ListSetTypes(ctx, catalog.ListSetTypesInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list set types")
	}

	return &ListSetTypesOutput{SetTypes: out.SetTypes}, nil
}

// ListStatTypes returns the catalog's stat names
func (o *orchestrator) ListStatTypes(ctx context.Context, _ *ListStatTypesInput) (*ListStatTypesOutput, error) {
	out, err := o.catalogRepo.ListStatTypes(ctx, catalog.ListStatTypesInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stat types")
	}

	return &ListStatTypesOutput{Stats: out.Stats}, nil
}

// SeedCatalog adds every engine stat and the given set types to the catalog
func (o *orchestrator) SeedCatalog(ctx context.Context, input *SeedCatalogInput) (*SeedCatalogOutput, error) {
	setTypes := DefaultSetTypes()
	if input != nil && len(input.SetTypes) > 0 {
		setTypes = input.SetTypes
	}

	sets, err := o.catalogRepo.SeedSetTypes(ctx, catalog.SeedSetTypesInput{SetTypes: setTypes})
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed set types")
	}

	stats, err := o.catalogRepo.SeedStatTypes(ctx, catalog.SeedStatTypesInput{Stats: driveform.KnownStats()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to seed stat types")
	}

	return &SeedCatalogOutput{
		SetTypesAdded:  sets.Added,
		StatTypesAdded: stats.Added,
	}, nil
}

func (o *orchestrator) validateAgainstCatalog(ctx context.Context, setName, mainStat string, substats []string) error {
	setOut, err := o.catalogRepo.HasSetType(ctx, catalog.HasSetTypeInput{Name: setName})
	if err != nil {
		return errors.Wrap(err, "failed to look up set type")
	}

	vb := errors.NewValidationBuilder()
	if !setOut.Exists {
		vb.Fieldf("set_name", "unknown set type: %s", setName)
	}

	names := append([]string{mainStat}, substats...)
	statOut, err := o.catalogRepo.HasStatTypes(ctx, catalog.HasStatTypesInput{Names: names})
	if err != nil {
		return errors.Wrap(err, "failed to look up stat types")
	}
	addUnknownStats(statOut.Unknown, mainStat, vb)

	return vb.Build()
}

func (o *orchestrator) validateStatNames(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	out, err := o.catalogRepo.HasStatTypes(ctx, catalog.HasStatTypesInput{Names: names})
	if err != nil {
		return errors.Wrap(err, "failed to look up stat types")
	}
	if len(out.Unknown) == 0 {
		return nil
	}

	vb := errors.NewValidationBuilder()
	for _, name := range out.Unknown {
		vb.Fieldf("stats", "unknown stat type: %s", name)
	}
	return vb.Build()
}

func addUnknownStats(unknown []string, mainStat string, vb *errors.ValidationBuilder) {
	for _, name := range unknown {
		if name == mainStat {
			vb.Fieldf("main_stat_name", "unknown stat type: %s", name)
			continue
		}
		vb.Fieldf("substats", "unknown stat type: %s", name)
	}
}

// validateSubstatNames checks entries are non-empty and unique
func validateSubstatNames(names []string, vb *errors.ValidationBuilder) {
	populated := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		populated = append(populated, name)
	}
	if len(populated) != len(names) {
		vb.Field("substats", "entries cannot be empty")
	}
	errors.ValidateUnique("substats", populated, vb)
}

// replaceSubstats swaps in fresh original substat lines
func replaceSubstats(piece *entity.Piece, names []string) {
	piece.Substats = make([]*entity.Substat, 0, len(names))
	for _, name := range names {
		piece.NextSubstatSeq++
		piece.Substats = append(piece.Substats, &entity.Substat{
			ID:         idgen.SubstatID(piece.ID, piece.NextSubstatSeq),
			Name:       name,
			IsOriginal: true,
		})
	}
}

func findSubstat(piece *entity.Piece, substatID string) (*entity.Substat, error) {
	if substatID == "" {
		return nil, errors.InvalidArgument("substat ID is required")
	}

	substat := piece.FindSubstat(substatID)
	if substat == nil {
		return nil, errors.InvalidArgumentf("substat %s does not belong to drive %s", substatID, piece.ID).
			WithMeta("substat_id", substatID)
	}
	return substat, nil
}

func problemMessage(problem driveform.Problem) string {
	switch problem {
	case driveform.ProblemEmptySetName:
		return "is required"
	case driveform.ProblemInvalidSlot:
		return "must be between 1 and 6"
	case driveform.ProblemEmptyPrimary:
		return "is required"
	case driveform.ProblemPrimaryNotLegalForSlot:
		return "is not a legal main stat for this position"
	case driveform.ProblemSecondaryCountOutOfRange:
		return "must contain 3 or 4 entries"
	default:
		return string(problem)
	}
}
