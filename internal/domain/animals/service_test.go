package animals

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Record
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Record{}}
}

func (r *testRepo) Create(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[rec.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) Update(ctx context.Context, rec Record) error {
	if _, ok := r.byID[rec.ID]; !ok {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Record, error) {
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *testRepo) List(ctx context.Context) ([]Record, error) {
	out := make([]Record, 0, len(r.byID))
	for _, rec := range r.byID {
		out = append(out, rec)
	}
	return out, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultSmartDog_WhenNameAndAgeMissing(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	rec, err := svc.Create(context.Background(), CreateInput{Kind: "smart_dog"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Name != "Xiaoming" || rec.Age != 0 {
		t.Fatalf("expected default Xiaoming/0, got %s/%d", rec.Name, rec.Age)
	}
	if rec.ID == "" {
		t.Fatalf("expected generated id")
	}
	if rec.CreatedAt != now || rec.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if _, ok := repo.byID[rec.ID]; !ok {
		t.Fatalf("expected record stored")
	}
}

func TestService_Create_RequiresNameAndAgeForOtherKinds(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{Kind: "animal", Name: strPtr("Rex")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// smart_dog con solo uno de los dos tampoco usa el default
	_, err = svc.Create(context.Background(), CreateInput{Kind: "smart_dog", Age: intPtr(3)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{Kind: "cat", Name: strPtr("Tom"), Age: intPtr(-1)})
	var ce *ConstructionError
	if !errors.As(err, &ce) || ce.Field != "age" {
		t.Fatalf("expected ConstructionError on age, got %v", err)
	}
}

func TestService_Perform_UsesVariantDispatch(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	cat, err := svc.Create(ctx, CreateInput{Kind: "cat", Name: strPtr("Tom"), Age: intPtr(2), FurColor: "orange"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	out, err := svc.Perform(ctx, cat.ID, ActionEat)
	if err != nil {
		t.Fatalf("Perform error: %v", err)
	}
	if out != "Tomis eating silently..." {
		t.Fatalf("expected cat eat text, got %q", out)
	}

	if _, err := svc.Perform(ctx, cat.ID, ActionBark); !errors.Is(err, ErrUnsupportedAction) {
		t.Fatalf("expected ErrUnsupportedAction, got %v", err)
	}
	if _, err := svc.Perform(ctx, "missing", ActionEat); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_UpdateProfile_AnimalAndCat(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	now1 := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(time.Minute)

	svc.now = func() time.Time { return now1 }
	cat, err := svc.Create(ctx, CreateInput{Kind: "cat", Name: strPtr("Tom"), Age: intPtr(2), FurColor: "orange"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	updated, err := svc.UpdateProfile(ctx, cat.ID, UpdateProfileInput{
		Name:     strPtr(" Garfield "),
		FurColor: strPtr("ginger"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if updated.Name != "Garfield" || updated.Age != 2 || updated.FurColor != "ginger" {
		t.Fatalf("unexpected update result %#v", updated)
	}
	if updated.CreatedAt != now1 || updated.UpdatedAt != now2 {
		t.Fatalf("expected CreatedAt kept and UpdatedAt bumped")
	}

	// edad negativa se rechaza y no se guarda nada
	_, err = svc.UpdateProfile(ctx, cat.ID, UpdateProfileInput{Age: intPtr(-1)})
	if !errors.Is(err, ErrInvalidAttribute) {
		t.Fatalf("expected ErrInvalidAttribute, got %v", err)
	}
	if repo.byID[cat.ID].Age != 2 {
		t.Fatalf("expected stored age unchanged")
	}

	// color es solo de smart_dog
	_, err = svc.UpdateProfile(ctx, cat.ID, UpdateProfileInput{Color: strPtr("Black")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_UpdateProfile_SmartDogNameAgeImmutable(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	dog, err := svc.Create(ctx, CreateInput{Kind: "smart_dog", Name: strPtr("Jack"), Age: intPtr(5)})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, dog.ID, UpdateProfileInput{Name: strPtr("Max")}); !errors.Is(err, ErrImmutable) {
		t.Fatalf("expected ErrImmutable on name, got %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, dog.ID, UpdateProfileInput{Color: strPtr("Black")})
	if err != nil {
		t.Fatalf("UpdateProfile color error: %v", err)
	}
	if updated.Color != "Black" {
		t.Fatalf("expected color Black, got %q", updated.Color)
	}

	out, err := svc.Perform(ctx, dog.ID, ActionBark)
	if err != nil || out != "Jack aged 5 says Woof!" {
		t.Fatalf("unexpected bark %q err=%v", out, err)
	}
}
