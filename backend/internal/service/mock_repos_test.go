package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/CM6156/CoilmasterThailand/backend/internal/i18n"
	"github.com/CM6156/CoilmasterThailand/backend/internal/model"
	"github.com/CM6156/CoilmasterThailand/backend/internal/repository"
)

// ── 测试用 ID 生成 ──

var (
	idMu  sync.Mutex
	idSeq int
)

func nextID(prefix string) string {
	idMu.Lock()
	defer idMu.Unlock()
	idSeq++
	return fmt.Sprintf("%s-%04d", prefix, idSeq)
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users    map[string]*model.User // key: user_id
	onCreate func()                 // 模拟并发写入，只触发一次
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if hook := m.onCreate; hook != nil {
		m.onCreate = nil
		hook()
	}
	for _, u := range m.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
		if u.Email != nil && user.Email != nil && *u.Email == *user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		user.UserID = nextID("user")
	}
	user.CreatedAt = time.Now()
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LastLoginAt = &at
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// ── Mock SessionRepository ──

type mockSessionRepo struct {
	sessions map[string]*model.Session
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*model.Session)}
}

func (m *mockSessionRepo) Create(_ context.Context, s *model.Session) error {
	m.sessions[s.SessionID] = s
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) Revoke(_ context.Context, id string, at time.Time) error {
	if s, ok := m.sessions[id]; ok && s.RevokedAt == nil {
		s.RevokedAt = &at
	}
	return nil
}

// ── Mock CustomerRepository ──

type mockCustomerRepo struct {
	customers map[string]*model.Customer
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[string]*model.Customer)}
}

func (m *mockCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.CustomerID == "" {
		c.CustomerID = nextID("cust")
	}
	c.CreatedAt = time.Now()
	m.customers[c.CustomerID] = c
	return nil
}

func (m *mockCustomerRepo) GetByID(_ context.Context, id string) (*model.Customer, error) {
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomerRepo) GetByName(_ context.Context, name string) (*model.Customer, error) {
	for _, c := range m.customers {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	var result []model.Customer
	for _, c := range m.customers {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// ── Mock ProductRepository ──

type mockProductRepo struct {
	products map[string]*model.Product
	err      error
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[string]*model.Product)}
}

func (m *mockProductRepo) Create(_ context.Context, p *model.Product) error {
	if m.err != nil {
		return m.err
	}
	if p.ProductID == "" {
		p.ProductID = nextID("prod")
	}
	p.CreatedAt = time.Now()
	m.products[p.ProductID] = p
	return nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (*model.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) List(_ context.Context) ([]model.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []model.Product
	for _, p := range m.products {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// ── Mock ShippingStatusRepository ──

type mockShippingRepo struct {
	statuses  map[string]*model.ShippingStatus // key: product_id
	createErr error
}

func newMockShippingRepo() *mockShippingRepo {
	return &mockShippingRepo{statuses: make(map[string]*model.ShippingStatus)}
}

func (m *mockShippingRepo) Create(_ context.Context, s *model.ShippingStatus) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.statuses[s.ProductID]; exists {
		return gorm.ErrDuplicatedKey
	}
	if s.ShippingID == "" {
		s.ShippingID = nextID("ship")
	}
	m.statuses[s.ProductID] = s
	return nil
}

func (m *mockShippingRepo) GetByProductID(_ context.Context, productID string) (*model.ShippingStatus, error) {
	if s, ok := m.statuses[productID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShippingRepo) Upsert(_ context.Context, s *model.ShippingStatus) error {
	if existing, ok := m.statuses[s.ProductID]; ok {
		s.ShippingID = existing.ShippingID
	} else if s.ShippingID == "" {
		s.ShippingID = nextID("ship")
	}
	s.UpdatedAt = time.Now()
	m.statuses[s.ProductID] = s
	return nil
}

// ── Mock ProcessRepository ──

type mockProcessRepo struct {
	processes map[string]*model.Process
}

func newMockProcessRepo() *mockProcessRepo {
	return &mockProcessRepo{processes: make(map[string]*model.Process)}
}

func (m *mockProcessRepo) Create(_ context.Context, p *model.Process) error {
	for _, existing := range m.processes {
		if existing.ProductID == p.ProductID && existing.ProcessOrder == p.ProcessOrder {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ProcessID == "" {
		p.ProcessID = nextID("proc")
	}
	m.processes[p.ProcessID] = p
	return nil
}

func (m *mockProcessRepo) GetByID(_ context.Context, id string) (*model.Process, error) {
	if p, ok := m.processes[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProcessRepo) GetByProductAndOrder(_ context.Context, productID string, order int) (*model.Process, error) {
	for _, p := range m.processes {
		if p.ProductID == productID && p.ProcessOrder == order {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProcessRepo) List(_ context.Context) ([]model.Process, error) {
	var result []model.Process
	for _, p := range m.processes {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		ni, nj := "", ""
		if result[i].Product != nil {
			ni = result[i].Product.Name
		}
		if result[j].Product != nil {
			nj = result[j].Product.Name
		}
		if ni != nj {
			return ni < nj
		}
		return result[i].ProcessOrder < result[j].ProcessOrder
	})
	return result, nil
}

// ── Mock EquipmentRepository ──

type mockEquipmentRepo struct {
	equipments map[string]*model.Equipment
}

func newMockEquipmentRepo() *mockEquipmentRepo {
	return &mockEquipmentRepo{equipments: make(map[string]*model.Equipment)}
}

func (m *mockEquipmentRepo) Create(_ context.Context, e *model.Equipment) error {
	if e.EquipmentID == "" {
		e.EquipmentID = nextID("eq")
	}
	m.equipments[e.EquipmentID] = e
	return nil
}

func (m *mockEquipmentRepo) GetByID(_ context.Context, id string) (*model.Equipment, error) {
	if e, ok := m.equipments[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEquipmentRepo) GetByName(_ context.Context, name string) (*model.Equipment, error) {
	for _, e := range m.equipments {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEquipmentRepo) List(_ context.Context) ([]model.Equipment, error) {
	var result []model.Equipment
	for _, e := range m.equipments {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock MaterialRepository ──

type mockMaterialRepo struct {
	materials map[string]*model.RawMaterial
}

func newMockMaterialRepo() *mockMaterialRepo {
	return &mockMaterialRepo{materials: make(map[string]*model.RawMaterial)}
}

func (m *mockMaterialRepo) Create(_ context.Context, mat *model.RawMaterial) error {
	if mat.MaterialID == "" {
		mat.MaterialID = nextID("mat")
	}
	m.materials[mat.MaterialID] = mat
	return nil
}

func (m *mockMaterialRepo) GetByID(_ context.Context, id string) (*model.RawMaterial, error) {
	if mat, ok := m.materials[id]; ok {
		return mat, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMaterialRepo) GetByName(_ context.Context, name string) (*model.RawMaterial, error) {
	for _, mat := range m.materials {
		if mat.Name == name {
			return mat, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMaterialRepo) List(_ context.Context) ([]model.RawMaterial, error) {
	var result []model.RawMaterial
	for _, mat := range m.materials {
		result = append(result, *mat)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock RequirementRepository ──

type mockRequirementRepo struct {
	requirements []*model.ProductionRequirement
}

func newMockRequirementRepo() *mockRequirementRepo {
	return &mockRequirementRepo{}
}

func (m *mockRequirementRepo) Create(_ context.Context, r *model.ProductionRequirement) error {
	if r.RequirementID == "" {
		r.RequirementID = nextID("req")
	}
	m.requirements = append(m.requirements, r)
	return nil
}

func (m *mockRequirementRepo) List(_ context.Context) ([]model.ProductionRequirement, error) {
	result := make([]model.ProductionRequirement, 0, len(m.requirements))
	for i := len(m.requirements) - 1; i >= 0; i-- {
		result = append(result, *m.requirements[i])
	}
	return result, nil
}

func (m *mockRequirementRepo) CountByProcess(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, r := range m.requirements {
		counts[r.ProcessID]++
	}
	return counts, nil
}

func (m *mockRequirementRepo) CountByEquipment(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, r := range m.requirements {
		if r.EquipmentID != nil {
			counts[*r.EquipmentID]++
		}
	}
	return counts, nil
}

func (m *mockRequirementRepo) CountByMaterial(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, r := range m.requirements {
		if r.MaterialID != nil {
			counts[*r.MaterialID]++
		}
	}
	return counts, nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications []*model.Notification
	err           error
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	if m.err != nil {
		return m.err
	}
	if n.NotificationID == "" {
		n.NotificationID = nextID("noti")
	}
	n.CreatedAt = time.Now()
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *mockNotificationRepo) ListRecent(_ context.Context, limit int) ([]model.Notification, error) {
	var result []model.Notification
	for i := len(m.notifications) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, *m.notifications[i])
	}
	return result, nil
}

func (m *mockNotificationRepo) messages() []string {
	out := make([]string, 0, len(m.notifications))
	for _, n := range m.notifications {
		out = append(out, n.Message)
	}
	return out
}

// ── Mock Notifier ──

type mockNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *mockNotifier) Send(_ context.Context, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, message)
	return nil
}

// ── Mock Localizer ──

type mockLocalizer struct {
	values   map[string]string // "lang:key" → value
	failLang i18n.Language
}

func (m *mockLocalizer) ResolveMany(_ context.Context, keys []string, lang i18n.Language) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := m.values[string(lang)+":"+k]; ok {
			out[k] = v
		} else {
			out[k] = k
		}
	}
	return out
}

func (m *mockLocalizer) Upsert(_ context.Context, key string, lang i18n.Language, value string) error {
	if lang == m.failLang {
		return i18n.ErrEmptyValue
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[string(lang)+":"+key] = value
	return nil
}

// ── 测试环境 ──

type testEnv struct {
	repo          *repository.Repository
	users         *mockUserRepo
	sessions      *mockSessionRepo
	customers     *mockCustomerRepo
	products      *mockProductRepo
	shipping      *mockShippingRepo
	processes     *mockProcessRepo
	equipments    *mockEquipmentRepo
	materials     *mockMaterialRepo
	requirements  *mockRequirementRepo
	notifications *mockNotificationRepo
	notifier      *mockNotifier
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:         newMockUserRepo(),
		sessions:      newMockSessionRepo(),
		customers:     newMockCustomerRepo(),
		products:      newMockProductRepo(),
		shipping:      newMockShippingRepo(),
		processes:     newMockProcessRepo(),
		equipments:    newMockEquipmentRepo(),
		materials:     newMockMaterialRepo(),
		requirements:  newMockRequirementRepo(),
		notifications: newMockNotificationRepo(),
		notifier:      &mockNotifier{},
	}
	env.repo = &repository.Repository{
		User:         env.users,
		Session:      env.sessions,
		Customer:     env.customers,
		Product:      env.products,
		Shipping:     env.shipping,
		Process:      env.processes,
		Equipment:    env.equipments,
		Material:     env.materials,
		Requirement:  env.requirements,
		Notification: env.notifications,
	}
	return env
}
