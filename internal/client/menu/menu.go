// Package menu turns the server-delivered navigation payload into a
// renderable tree and answers permission queries locally once the snapshot
// is cached.
package menu

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/avendano-dev/backoffice/internal/client/models"
	"github.com/avendano-dev/backoffice/internal/common"
	"github.com/avendano-dev/backoffice/internal/logging"
)

// AccountAPI is the slice of the REST surface the builder needs.
type AccountAPI interface {
	Menu(ctx context.Context) ([]models.RawMenuNode, error)
	Permissions(ctx context.Context) (*models.RawPermissionSnapshot, error)
}

// UserSource reports who is logged in.
type UserSource interface {
	CurrentUser() *models.User
}

// Key is a parsed permission identifier. Wire strings like "users.list" are
// parsed once at the boundary so typos cannot silently resolve to a lookup
// miss somewhere else.
type Key struct {
	Resource string
	Action   string
}

// ParseKey splits a "resource.action" permission string.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Key{}, fmt.Errorf("%w: malformed permission key %q", common.ErrValidation, s)
	}
	return Key{Resource: parts[0], Action: parts[1]}, nil
}

// Snapshot is the cached permission set of the current user. A superuser
// snapshot answers every query true without consulting the mapping.
type Snapshot struct {
	UserID      int
	IsSuperuser bool
	grants      map[Key]bool
}

// Allows reports whether the snapshot grants the key. Unknown resources and
// actions are denied, never granted.
func (s *Snapshot) Allows(k Key) bool {
	if s == nil {
		return false
	}
	if s.IsSuperuser {
		return true
	}
	return s.grants[k]
}

func newSnapshot(raw *models.RawPermissionSnapshot) *Snapshot {
	snap := &Snapshot{
		UserID:      raw.UserID,
		IsSuperuser: raw.IsSuperuser,
		grants:      make(map[Key]bool),
	}
	for resource, actions := range raw.Permissions {
		for action, allowed := range actions {
			snap.grants[Key{Resource: resource, Action: action}] = allowed
		}
	}
	return snap
}

// Service caches the menu tree and permission snapshot for the lifetime of a
// session. Call Reset (or reload) after login; nothing here invalidates
// automatically.
type Service struct {
	api     AccountAPI
	session UserSource
	log     logging.Logger

	mu    sync.RWMutex
	tree  []models.MenuNode
	perms *Snapshot
}

func NewService(api AccountAPI, session UserSource, log logging.Logger) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{api: api, session: session, log: log}
}

// LoadMenu fetches the raw nested menu and rebuilds the tree wholesale.
func (s *Service) LoadMenu(ctx context.Context) ([]models.MenuNode, error) {
	raw, err := s.api.Menu(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	tree := mapNodes(raw)
	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()

	s.log.Debug(ctx, "menu loaded", "roots", len(tree))
	return tree, nil
}

func mapNodes(raw []models.RawMenuNode) []models.MenuNode {
	if len(raw) == 0 {
		return nil
	}
	nodes := make([]models.MenuNode, 0, len(raw))
	for _, r := range raw {
		nodes = append(nodes, mapNode(r))
	}
	return nodes
}

func mapNode(r models.RawMenuNode) models.MenuNode {
	id := r.Code
	if id == "" {
		id = strconv.Itoa(r.ID)
	}
	return models.MenuNode{
		ID:         id,
		Label:      r.Name,
		Icon:       r.Icon,
		Route:      r.URL,
		IsCategory: r.IsCategory,
		Color:      r.Color,
		Children:   mapNodes(r.Children),
	}
}

// LoadPermissions fetches the permission snapshot, or synthesizes an
// all-granting one locally when the current user is a superuser.
func (s *Service) LoadPermissions(ctx context.Context) (*Snapshot, error) {
	if user := s.session.CurrentUser(); user != nil && user.IsSuperuser {
		snap := &Snapshot{UserID: user.ID, IsSuperuser: true, grants: map[Key]bool{}}
		s.mu.Lock()
		s.perms = snap
		s.mu.Unlock()
		s.log.Debug(ctx, "superuser permission snapshot synthesized", "user_id", user.ID)
		return snap, nil
	}

	raw, err := s.api.Permissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load permissions: %w", err)
	}

	snap := newSnapshot(raw)
	s.mu.Lock()
	s.perms = snap
	s.mu.Unlock()

	s.log.Debug(ctx, "permissions loaded", "user_id", snap.UserID, "grants", len(snap.grants))
	return snap, nil
}

// HasPermission answers a "resource.action" query against the cached
// snapshot. Malformed keys, a missing snapshot and unknown permissions all
// deny; this never errors.
func (s *Service) HasPermission(permission string) bool {
	key, err := ParseKey(permission)
	if err != nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perms.Allows(key)
}

// Menu returns the cached tree, or nil when none was loaded.
func (s *Service) Menu() []models.MenuNode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

// Permissions returns the cached snapshot, or nil.
func (s *Service) Permissions() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perms
}

// Reset drops the cached tree and snapshot. Wire it to session teardown.
func (s *Service) Reset() {
	s.mu.Lock()
	s.tree = nil
	s.perms = nil
	s.mu.Unlock()
}
