package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/mahjong-tally/internal/common/clock"
	"github.com/KirkDiggler/mahjong-tally/internal/common/uuid"
	"github.com/KirkDiggler/mahjong-tally/internal/models"
	"github.com/KirkDiggler/mahjong-tally/internal/passcode"
	"github.com/KirkDiggler/mahjong-tally/internal/paytable"
	actionlogRepo "github.com/KirkDiggler/mahjong-tally/internal/repositories/actionlog"
	playerRepo "github.com/KirkDiggler/mahjong-tally/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/mahjong-tally/internal/repositories/room"
)

const defaultMaxPlayers = 4

type service struct {
	roomRepo       roomRepo.Repository
	playerRepo     playerRepo.Repository
	actionLogRepo  actionlogRepo.Repository
	passcodeSource passcode.Source
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	maxPlayers     int

	// roomLocks serializes settlements per room so concurrent
	// RecordWin/UndoWin calls cannot interleave their delta writes
	mu        sync.Mutex
	roomLocks map[string]*sync.Mutex
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.ActionLogRepo == nil {
		return nil, ErrNilActionLogRepo
	}

	if cfg.PasscodeSource == nil {
		return nil, ErrNilPasscodeSource
	}

	clockImpl := cfg.Clock
	if clockImpl == nil {
		clockImpl = &clock.DefaultClock{}
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = defaultMaxPlayers
	}

	return &service{
		roomRepo:       cfg.RoomRepo,
		playerRepo:     cfg.PlayerRepo,
		actionLogRepo:  cfg.ActionLogRepo,
		passcodeSource: cfg.PasscodeSource,
		clock:          clockImpl,
		uuidGenerator:  uuidGenerator,
		maxPlayers:     maxPlayers,
		roomLocks:      make(map[string]*sync.Mutex),
	}, nil
}

// RegisterUser registers a chat user, or refreshes the name and
// username of one already known. Room membership and tally survive
// re-registration.
func (s *service) RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	player, err := s.upsertPlayer(ctx, input.PlayerID, input.Name, input.Username)
	if err != nil {
		return nil, err
	}

	return &RegisterUserOutput{Player: player}, nil
}

// CreateRoom creates a room with a fresh passcode and the caller as
// host. The host is moved into the room immediately, leaving any room
// they were in before.
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	code, err := s.passcodeSource.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate passcode: %w", err)
	}

	if _, err := s.upsertPlayer(ctx, input.HostID, input.Name, input.Username); err != nil {
		return nil, err
	}

	if err := s.playerRepo.UpdatePlayerRoom(ctx, &playerRepo.UpdatePlayerRoomInput{
		PlayerID: input.HostID,
		Passcode: code,
	}); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
		Room: &models.Room{
			Passcode:  code,
			HostID:    input.HostID,
			IsShooter: true,
			System:    paytable.Default(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}); err != nil {
		return nil, err
	}

	return &CreateRoomOutput{Passcode: code}, nil
}

// JoinRoom adds a registered player to an existing room. Joining resets
// the player's tally to zero and removes them from any previous room.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrUnregisteredUser
		}
		return nil, err
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		Passcode: input.Passcode,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrNoSuchRoom
		}
		return nil, err
	}

	if player.Passcode == room.Passcode {
		return nil, ErrPlayerExists
	}

	members, err := s.playerRepo.GetRoomPlayers(ctx, &playerRepo.GetRoomPlayersInput{
		Passcode: room.Passcode,
	})
	if err != nil {
		return nil, err
	}

	if len(members.Players) >= s.maxPlayers {
		return nil, ErrRoomFull
	}

	if _, err := s.upsertPlayer(ctx, input.PlayerID, input.Name, input.Username); err != nil {
		return nil, err
	}

	if err := s.playerRepo.UpdatePlayerRoom(ctx, &playerRepo.UpdatePlayerRoomInput{
		PlayerID: input.PlayerID,
		Passcode: room.Passcode,
	}); err != nil {
		return nil, err
	}

	return &JoinRoomOutput{HostID: room.HostID}, nil
}

// LeaveRoom removes a player from their room. A departing host
// dissolves the room: every remaining member is evicted and the room's
// action history is dropped.
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrUnregisteredUser
		}
		return nil, err
	}

	if player.Passcode == "" {
		return nil, ErrPlayerNotInRoom
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		Passcode: player.Passcode,
	})
	if err != nil && !errors.Is(err, roomRepo.ErrRoomNotFound) {
		return nil, err
	}

	if room == nil || room.HostID != input.PlayerID {
		if err := s.playerRepo.UpdatePlayerRoom(ctx, &playerRepo.UpdatePlayerRoomInput{
			PlayerID: input.PlayerID,
		}); err != nil {
			return nil, err
		}

		return &LeaveRoomOutput{}, nil
	}

	members, err := s.playerRepo.GetRoomPlayers(ctx, &playerRepo.GetRoomPlayersInput{
		Passcode: room.Passcode,
	})
	if err != nil {
		return nil, err
	}

	evicted := make([]string, 0, len(members.Players))
	for _, member := range members.Players {
		if err := s.playerRepo.UpdatePlayerRoom(ctx, &playerRepo.UpdatePlayerRoomInput{
			PlayerID: member.ID,
		}); err != nil {
			return nil, err
		}
		if member.ID != room.HostID {
			evicted = append(evicted, member.ID)
		}
	}

	if err := s.actionLogRepo.DeleteLog(ctx, &actionlogRepo.DeleteLogInput{
		Passcode: room.Passcode,
	}); err != nil {
		return nil, err
	}

	if err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{
		Passcode: room.Passcode,
	}); err != nil {
		return nil, err
	}

	return &LeaveRoomOutput{
		Dissolved:  true,
		EvictedIDs: evicted,
	}, nil
}

// GetRoomPlayers returns the standings of the caller's room, in join
// order.
func (s *service) GetRoomPlayers(ctx context.Context, input *GetRoomPlayersInput) (*GetRoomPlayersOutput, error) {
	room, members, err := s.resolveRoom(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	standings := make([]Standing, 0, len(members))
	for _, member := range members {
		standings = append(standings, Standing{
			PlayerID: member.ID,
			Name:     member.Name,
			Tally:    member.Tally,
		})
	}

	return &GetRoomPlayersOutput{
		Passcode:  room.Passcode,
		HostID:    room.HostID,
		Standings: standings,
	}, nil
}

// GetActionHistory returns the caller's room action history, oldest
// first.
func (s *service) GetActionHistory(ctx context.Context, input *GetActionHistoryInput) (*GetActionHistoryOutput, error) {
	room, _, err := s.resolveRoom(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.actionLogRepo.ListEntries(ctx, &actionlogRepo.ListEntriesInput{
		Passcode: room.Passcode,
	})
	if err != nil {
		return nil, err
	}

	return &GetActionHistoryOutput{Entries: entries.Entries}, nil
}

// SetGameMode switches a host's room between shooter and non-shooter
// settlement.
func (s *service) SetGameMode(ctx context.Context, input *SetGameModeInput) (*SetGameModeOutput, error) {
	room, err := s.hostedRoom(ctx, input.HostID)
	if err != nil {
		return nil, err
	}

	room.IsShooter = input.IsShooter
	if err := s.saveRoomConfig(ctx, room); err != nil {
		return nil, err
	}

	return &SetGameModeOutput{Room: room}, nil
}

// SetWinningSystem selects a preset winning system for a host's room.
func (s *service) SetWinningSystem(ctx context.Context, input *SetWinningSystemInput) (*SetWinningSystemOutput, error) {
	table, ok := paytable.Preset(input.Preset)
	if !ok {
		return nil, ErrUnknownSystem
	}

	room, err := s.hostedRoom(ctx, input.HostID)
	if err != nil {
		return nil, err
	}

	room.System = table
	if err := s.saveRoomConfig(ctx, room); err != nil {
		return nil, err
	}

	return &SetWinningSystemOutput{Room: room}, nil
}

// SetCustomWinningSystem installs a custom winning system parsed from
// ten decimal amounts.
func (s *service) SetCustomWinningSystem(ctx context.Context, input *SetCustomWinningSystemInput) (*SetCustomWinningSystemOutput, error) {
	table, err := paytable.ParseCustom(input.Amounts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCustomSystem, err)
	}

	room, err := s.hostedRoom(ctx, input.HostID)
	if err != nil {
		return nil, err
	}

	room.System = table
	if err := s.saveRoomConfig(ctx, room); err != nil {
		return nil, err
	}

	return &SetCustomWinningSystemOutput{Room: room}, nil
}

// upsertPlayer saves a player's profile, preserving the room membership
// and tally of one already known.
func (s *service) upsertPlayer(ctx context.Context, playerID, name, username string) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if !errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, err
		}
		player = &models.Player{ID: playerID}
	}

	player.Name = name
	player.Username = username

	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{
		Player: player,
	}); err != nil {
		return nil, err
	}

	return player, nil
}

// resolveRoom locates the caller's current room and its members.
func (s *service) resolveRoom(ctx context.Context, playerID string) (*models.Room, []*models.Player, error) {
	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, nil, ErrUnregisteredUser
		}
		return nil, nil, err
	}

	if player.Passcode == "" {
		return nil, nil, ErrPlayerNotInRoom
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		Passcode: player.Passcode,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, nil, ErrNoSuchRoom
		}
		return nil, nil, err
	}

	members, err := s.playerRepo.GetRoomPlayers(ctx, &playerRepo.GetRoomPlayersInput{
		Passcode: room.Passcode,
	})
	if err != nil {
		return nil, nil, err
	}

	return room, members.Players, nil
}

// hostedRoom locates the room the caller hosts.
func (s *service) hostedRoom(ctx context.Context, hostID string) (*models.Room, error) {
	room, err := s.roomRepo.GetRoomByHost(ctx, &roomRepo.GetRoomByHostInput{
		HostID: hostID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrNotHost
		}
		return nil, err
	}

	return room, nil
}

func (s *service) saveRoomConfig(ctx context.Context, room *models.Room) error {
	room.UpdatedAt = s.clock.Now()

	return s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room})
}
