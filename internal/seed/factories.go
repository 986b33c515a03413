package seed

import (
	"math/rand"
	"strings"
	"time"

	"blogly/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a fake user. Roughly a third of users keep the
// default placeholder image.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		ImgURL:    models.DefaultImageURL,
	}
	if f.rand.Intn(3) != 0 {
		user.ImgURL = gofakeit.ImageURL(200, 200)
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTag persists a fake tag with a unique lowercase name.
func (f *Factory) CreateTag(overrides ...func(*models.Tag)) (*models.Tag, error) {
	name := strings.ToLower(gofakeit.Word())
	if len(name) > 26 {
		name = name[:26]
	}
	tag := &models.Tag{
		// random suffix keeps repeated words unique
		Name: name + "-" + gofakeit.DigitN(3),
	}
	for _, override := range overrides {
		override(tag)
	}
	if err := f.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// CreatePost persists a fake post owned by user with the given tags and
// a creation time spread over the last 90 days.
func (f *Factory) CreatePost(user *models.User, tags []models.Tag, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:     gofakeit.Sentence(5),
		Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID:    user.ID,
		Tags:      tags,
		CreatedAt: time.Now().Add(-time.Duration(f.rand.Intn(90*24)) * time.Hour),
	}
	if len(post.Title) > 100 {
		post.Title = post.Title[:100]
	}
	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// PickTags returns a random subset of tags, possibly empty.
func (f *Factory) PickTags(tags []models.Tag) []models.Tag {
	if len(tags) == 0 {
		return nil
	}
	picked := make([]models.Tag, 0, 3)
	for _, t := range tags {
		if f.rand.Intn(len(tags)) < 2 {
			picked = append(picked, t)
		}
		if len(picked) == 3 {
			break
		}
	}
	return picked
}
