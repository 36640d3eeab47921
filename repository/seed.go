package repository

import (
	"context"
	"errors"

	"learnsphere/domain"
	"learnsphere/storage"

	"github.com/rs/zerolog/log"
)

// Demo catalog shipped with the product. Ids are the historical string
// counters so existing entitlement snapshots keep pointing at them.
var demoCourses = []domain.Course{
	{ID: "1", Title: "Advanced React Patterns", Description: "Master advanced React patterns including render props, HOCs, and custom hooks", Instructor: "Sarah Johnson", Duration: "8 weeks", Students: 245, Price: 99, Category: "Web Development"},
	{ID: "2", Title: "TypeScript Fundamentals", Description: "Learn TypeScript from basics to advanced type systems", Instructor: "Mike Chen", Duration: "6 weeks", Students: 389, Price: 79, Category: "Programming"},
	{ID: "3", Title: "Node.js Backend Development", Description: "Build scalable backend applications with Node.js and Express", Instructor: "Alex Rodriguez", Duration: "10 weeks", Students: 167, Price: 119, Category: "Backend"},
	{ID: "4", Title: "UI/UX Design Principles", Description: "Design beautiful and intuitive user interfaces", Instructor: "Emma Watson", Duration: "5 weeks", Students: 512, Price: 89, Category: "Design"},
	{ID: "5", Title: "Python for Data Science", Description: "Analyze data and build ML models with Python", Instructor: "David Lee", Duration: "12 weeks", Students: 678, Price: 149, Category: "Data Science"},
}

var demoBundles = []domain.Bundle{
	{ID: "1", Title: "Full Stack Developer Bundle", Description: "Complete path from frontend to backend development", Courses: 5, OriginalPrice: 500, DiscountedPrice: 300, Discount: 40},
	{ID: "2", Title: "Data Science Master Bundle", Description: "Everything you need to become a data scientist", Courses: 6, OriginalPrice: 600, DiscountedPrice: 360, Discount: 40},
	{ID: "3", Title: "Mobile Development Bundle", Description: "Build iOS and Android apps from scratch", Courses: 4, OriginalPrice: 400, DiscountedPrice: 260, Discount: 35},
	{ID: "4", Title: "UI/UX Design Complete Bundle", Description: "Master design thinking and user experience", Courses: 7, OriginalPrice: 550, DiscountedPrice: 330, Discount: 40},
	{ID: "5", Title: "DevOps Engineer Bundle", Description: "Learn CI/CD, Docker, Kubernetes and cloud platforms", Courses: 5, OriginalPrice: 480, DiscountedPrice: 312, Discount: 35},
}

var demoReviews = []domain.Review{
	{ID: "1", UserID: "user1", UserName: "John Doe", CourseID: "1", Rating: 5, Comment: "Excellent course! I learned a lot about React patterns.", Date: "2023-10-15"},
	{ID: "2", UserID: "user2", UserName: "Jane Smith", CourseID: "1", Rating: 4, Comment: "Very informative content, but could use more examples.", Date: "2023-10-10"},
	{ID: "3", UserID: "user3", UserName: "Mike Johnson", CourseID: "2", Rating: 5, Comment: "The TypeScript explanations were clear and concise.", Date: "2023-09-28"},
}

// SeedDemoData populates the catalog on first run. Existing keys are left
// alone unless force is set, in which case the demo catalogs overwrite
// whatever is stored.
func SeedDemoData(ctx context.Context, store storage.Store, force bool) error {
	if err := seedKey(ctx, store, coursesKey, demoCourses, force); err != nil {
		return err
	}
	if err := seedKey(ctx, store, bundlesKey, demoBundles, force); err != nil {
		return err
	}
	return seedKey(ctx, store, reviewsKey, demoReviews, force)
}

func seedKey[T any](ctx context.Context, store storage.Store, key string, items []T, force bool) error {
	if !force {
		_, err := store.Get(ctx, key)
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrKeyNotFound) {
			return err
		}
	}

	if err := saveList(ctx, store, key, items); err != nil {
		return err
	}
	log.Info().Str("key", key).Int("count", len(items)).Msg("seeded demo data")
	return nil
}
