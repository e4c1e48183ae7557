package services

import (
	"context"
	"strings"
	"time"

	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/app/repositories"
)

// fakeStores is an in-memory Stores implementation for service tests.
// InTransaction runs the callback against the same state; write-path
// ordering guarantees are what the assertions cover, not isolation.
type fakeStores struct {
	schools    map[int64]*models.School
	courses    map[int64]*models.Course
	professors map[int64]*models.Professor
	books      map[int64]*models.Book
	ratings    map[int64]*models.Rating
	users      map[string]*models.User

	nextID int64
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		schools:    make(map[int64]*models.School),
		courses:    make(map[int64]*models.Course),
		professors: make(map[int64]*models.Professor),
		books:      make(map[int64]*models.Book),
		ratings:    make(map[int64]*models.Rating),
		users:      make(map[string]*models.User),
	}
}

func (f *fakeStores) nextSequence() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStores) Schools() SchoolStore       { return &fakeSchoolStore{f} }
func (f *fakeStores) Courses() CourseStore       { return &fakeCourseStore{f} }
func (f *fakeStores) Professors() ProfessorStore { return &fakeProfessorStore{f} }
func (f *fakeStores) Books() BookStore           { return &fakeBookStore{f} }
func (f *fakeStores) Ratings() RatingStore       { return &fakeRatingStore{f} }
func (f *fakeStores) Users() UserStore           { return &fakeUserStore{f} }

func (f *fakeStores) InTransaction(ctx context.Context, fn func(ctx context.Context, s Stores) error) error {
	return fn(ctx, f)
}

// Seed helpers used by the tests.

func (f *fakeStores) addSchool(name string) *models.School {
	s := &models.School{ID: f.nextSequence(), Name: name, CreatedAt: time.Now()}
	f.schools[s.ID] = s
	return s
}

func (f *fakeStores) addCourse(schoolID int64, name, number, major, delivery string) *models.Course {
	c := &models.Course{
		ID:           f.nextSequence(),
		Name:         name,
		Number:       number,
		Major:        major,
		SchoolID:     schoolID,
		DeliveryMode: delivery,
		CreatedAt:    time.Now(),
	}
	f.courses[c.ID] = c
	return c
}

func (f *fakeStores) addUser(username, passwordHash string, role models.RoleType) *models.User {
	u := &models.User{
		ID:           f.nextSequence(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	f.users[u.Username] = u
	return u
}

type fakeSchoolStore struct{ f *fakeStores }

func (s *fakeSchoolStore) GetAll(ctx context.Context) ([]*models.School, error) {
	out := make([]*models.School, 0, len(s.f.schools))
	for _, school := range s.f.schools {
		out = append(out, school)
	}
	return out, nil
}

func (s *fakeSchoolStore) GetByID(ctx context.Context, id int64) (*models.School, error) {
	school, ok := s.f.schools[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return school, nil
}

func (s *fakeSchoolStore) GetOrCreate(ctx context.Context, name string) (*models.School, error) {
	for _, school := range s.f.schools {
		if strings.Contains(strings.ToLower(school.Name), strings.ToLower(name)) {
			return school, nil
		}
	}
	return s.f.addSchool(name), nil
}

type fakeCourseStore struct{ f *fakeStores }

func (s *fakeCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, ok := s.f.courses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return course, nil
}

func (s *fakeCourseStore) GetBySchoolID(ctx context.Context, schoolID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, course := range s.f.courses {
		if course.SchoolID == schoolID {
			out = append(out, course)
		}
	}
	return out, nil
}

func (s *fakeCourseStore) GetOrCreate(ctx context.Context, course *models.Course) (*models.Course, error) {
	for _, existing := range s.f.courses {
		if existing.SchoolID == course.SchoolID && existing.Number == course.Number {
			return existing, nil
		}
	}
	created := *course
	created.ID = s.f.nextSequence()
	created.CreatedAt = time.Now()
	s.f.courses[created.ID] = &created
	return &created, nil
}

func (s *fakeCourseStore) ListAggregates(ctx context.Context, filter repositories.CourseFilter) ([]*models.CourseAggregate, error) {
	var out []*models.CourseAggregate
	for _, course := range s.f.courses {
		agg := s.aggregate(course)
		if !matchesFilter(agg, filter) {
			continue
		}
		out = append(out, agg)
	}
	return out, nil
}

func (s *fakeCourseStore) GetAggregate(ctx context.Context, courseID int64) (*models.CourseAggregate, error) {
	course, ok := s.f.courses[courseID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return s.aggregate(course), nil
}

func (s *fakeCourseStore) aggregate(course *models.Course) *models.CourseAggregate {
	agg := &models.CourseAggregate{Course: *course}
	if school, ok := s.f.schools[course.SchoolID]; ok {
		agg.SchoolName = school.Name
	}
	sum := 0
	for _, r := range s.f.ratings {
		if r.CourseID == course.ID {
			sum += r.Rating
			agg.RatingCount++
		}
	}
	if agg.RatingCount > 0 {
		avg := float64(sum) / float64(agg.RatingCount)
		agg.AverageRating = &avg
	}
	return agg
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesFilter(agg *models.CourseAggregate, filter repositories.CourseFilter) bool {
	if filter.SchoolID > 0 && agg.SchoolID != filter.SchoolID {
		return false
	}
	if filter.Major != "" && !containsFold(agg.Major, filter.Major) {
		return false
	}
	if filter.DeliveryMode != "" && agg.DeliveryMode != filter.DeliveryMode {
		return false
	}
	if filter.Search != "" {
		dialogues := ""
		if agg.DialoguesRequirement != nil {
			dialogues = *agg.DialoguesRequirement
		}
		matched := false
		for _, field := range []string{agg.Name, agg.Number, agg.Major, dialogues, agg.DeliveryMode} {
			if containsFold(field, filter.Search) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

type fakeProfessorStore struct{ f *fakeStores }

func (s *fakeProfessorStore) GetOrCreateDefault(ctx context.Context) (*models.Professor, error) {
	for _, p := range s.f.professors {
		if p.FirstName == models.DefaultProfessorFirstName && p.LastName == models.DefaultProfessorLastName {
			return p, nil
		}
	}
	p := &models.Professor{
		ID:        s.f.nextSequence(),
		FirstName: models.DefaultProfessorFirstName,
		LastName:  models.DefaultProfessorLastName,
	}
	s.f.professors[p.ID] = p
	return p, nil
}

type fakeBookStore struct{ f *fakeStores }

func (s *fakeBookStore) GetOrCreate(ctx context.Context, textbookRef string) (*models.Book, error) {
	ref := strings.TrimSpace(textbookRef)
	if ref == "" || strings.EqualFold(ref, "n/a") {
		return nil, nil
	}
	for _, b := range s.f.books {
		if (b.ISBN != nil && *b.ISBN == ref) || (b.Title != nil && *b.Title == ref) {
			return b, nil
		}
	}
	b := &models.Book{ID: s.f.nextSequence()}
	if repositories.IsISBN(ref) {
		b.ISBN = &ref
	} else {
		b.Title = &ref
	}
	s.f.books[b.ID] = b
	return b, nil
}

type fakeRatingStore struct{ f *fakeStores }

func (s *fakeRatingStore) Create(ctx context.Context, rating *models.Rating) error {
	if _, ok := s.f.courses[rating.CourseID]; !ok {
		return repositories.ErrNotFound
	}
	rating.ID = s.f.nextSequence()
	rating.CreatedAt = time.Now()
	stored := *rating
	s.f.ratings[rating.ID] = &stored
	return nil
}

func (s *fakeRatingStore) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Rating, error) {
	var out []*models.Rating
	for _, r := range s.f.ratings {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUserStore struct{ f *fakeStores }

func (s *fakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := s.f.users[username]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}
