// internal/catalog/seed.go
package catalog

import (
	"fmt"

	"github.com/practicebay/practicebay-api/internal/models"
	"github.com/practicebay/practicebay-api/internal/utils"
)

// Default catalog content. Package state is never handed out directly;
// accessors return copies.
var (
	seedProducts = []models.Product{
		{
			Title:        "Premium 10ft Putting Mat",
			Slug:         "premium-putting-mat-10ft",
			Description:  models.String("Tournament-grade putting mat with auto-ball return."),
			Details:      models.String("Premium velvet surface, true roll, printed alignment guides."),
			Price:        129.0,
			Rating:       4.8,
			ReviewsCount: 127,
			Images: []string{
				"https://images.unsplash.com/photo-1604490205019-95898235570d?q=80&w=1600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1542038784456-1ea8e935640e?q=80&w=1600&auto=format&fit=crop",
			},
			Benefits: []string{
				"Improves putting accuracy by 40%",
				"Professional auto-ball return system",
				"Premium velvet surface mimics real greens",
				"Non-slip backing for any floor",
				"Rolls up for easy storage",
			},
			InStock:  true,
			Category: "training",
		},
		{
			Title:        "Swing Trainer Aid",
			Slug:         "swing-trainer-aid",
			Description:  models.String("Build power and consistency with tempo training."),
			Details:      models.String("Weighted shaft for perfect tempo and plane."),
			Price:        69.0,
			Rating:       4.8,
			ReviewsCount: 98,
			Images: []string{
				"https://images.unsplash.com/photo-1511715282685-5f1f1c9b1b97?q=80&w=1600&auto=format&fit=crop",
			},
			Benefits: []string{
				"Builds a repeatable swing",
				"Improves sequencing and timing",
				"Warm-up tool before rounds",
			},
			InStock:  true,
			Category: "training",
		},
		{
			Title:        "Alignment Sticks (3-Pack)",
			Slug:         "alignment-sticks-3-pack",
			Description:  models.String("Versatile training for aim, swing plane, and setup."),
			Details:      models.String("Durable fiberglass with protective caps."),
			Price:        24.0,
			Rating:       4.9,
			ReviewsCount: 213,
			Images: []string{
				"https://images.unsplash.com/photo-1549058912-e7564e5a7f66?q=80&w=1600&auto=format&fit=crop",
			},
			Benefits: []string{"Immediate setup feedback", "Multi-use practice aid"},
			InStock:  true,
			Category: "training",
		},
		{
			Title:        "Chipping Practice Net",
			Slug:         "chipping-practice-net",
			Description:  models.String("Foldable net for precision short-game training."),
			Details:      models.String("Targets at multiple heights, indoor/outdoor use."),
			Price:        49.0,
			Rating:       4.7,
			ReviewsCount: 156,
			Images: []string{
				"https://images.unsplash.com/photo-1570951525721-50e756c1c8fe?q=80&w=1600&auto=format&fit=crop",
			},
			Benefits: []string{"Dial in distance control", "Compact and portable"},
			InStock:  true,
			Category: "training",
		},
		{
			Title:        "Practice Balls (Dozen)",
			Slug:         "practice-balls-dozen",
			Description:  models.String("Soft-flight practice balls safe for indoor use."),
			Details:      models.String("Realistic feel with reduced flight distance."),
			Price:        23.0,
			Rating:       4.6,
			ReviewsCount: 87,
			Images: []string{
				"https://images.unsplash.com/photo-1502877338535-766e1452684a?q=80&w=1600&auto=format&fit=crop",
			},
			Benefits: []string{"Safe indoors", "Durable construction"},
			InStock:  true,
			Category: "training",
		},
	}

	seedTestimonials = []models.Testimonial{
		{
			Name:   "Mike R.",
			Quote:  "Dropped 5 strokes in 2 months!",
			Rating: 5,
			Photo:  models.String("https://images.unsplash.com/photo-1517841905240-472988babdf9?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:   "Sarah K.",
			Quote:  "My living room turned into a putting studio.",
			Rating: 5,
			Photo:  models.String("https://images.unsplash.com/photo-1531123897727-8f129e1688ce?q=80&w=1200&auto=format&fit=crop"),
		},
		{
			Name:   "Jamal D.",
			Quote:  "Consistent practice finally feels easy.",
			Rating: 5,
			Photo:  models.String("https://images.unsplash.com/photo-1520975922215-cfe9366c67a8?q=80&w=1200&auto=format&fit=crop"),
		},
	}

	seedBundle = models.Bundle{
		Title:        "The Complete Home Training System",
		Description:  models.String("Everything you need to practice like a pro at home."),
		Items:        slugs(seedProducts),
		RegularPrice: 294.0,
		BundlePrice:  219.0,
		SavingsText:  models.String("Save $75!"),
		Image:        models.String("https://images.unsplash.com/photo-1501706362039-c06b2d715385?q=80&w=1600&auto=format&fit=crop"),
	}
)

func slugs(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Slug)
	}
	return out
}

// Products returns the default products in catalog order.
func Products() []models.Product {
	out := make([]models.Product, len(seedProducts))
	for i, p := range seedProducts {
		out[i] = p.Clone()
	}
	return out
}

// Product looks a default product up by slug.
func Product(slug string) (models.Product, bool) {
	for _, p := range seedProducts {
		if p.Slug == slug {
			return p.Clone(), true
		}
	}
	return models.Product{}, false
}

func Testimonials() []models.Testimonial {
	out := make([]models.Testimonial, len(seedTestimonials))
	for i, t := range seedTestimonials {
		out[i] = t.Clone()
	}
	return out
}

func Bundle() models.Bundle {
	return seedBundle.Clone()
}

// Documents returns the default content of a collection in the shape the
// store inserts. Unknown collections yield nil.
func Documents(collection string) []interface{} {
	var docs []interface{}
	switch collection {
	case models.CollectionProduct:
		for _, p := range Products() {
			docs = append(docs, p)
		}
	case models.CollectionTestimonial:
		for _, t := range Testimonials() {
			docs = append(docs, t)
		}
	case models.CollectionBundle:
		docs = append(docs, Bundle())
	}
	return docs
}

// Validate checks every default record against the model constraints and
// that product slugs are unique.
func Validate() error {
	seen := make(map[string]struct{}, len(seedProducts))
	for _, p := range seedProducts {
		if err := utils.ValidateStruct(p); err != nil {
			return fmt.Errorf("product %q: %w", p.Slug, err)
		}
		if _, dup := seen[p.Slug]; dup {
			return fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		seen[p.Slug] = struct{}{}
	}

	for _, t := range seedTestimonials {
		if err := utils.ValidateStruct(t); err != nil {
			return fmt.Errorf("testimonial %q: %w", t.Name, err)
		}
	}

	if err := utils.ValidateStruct(seedBundle); err != nil {
		return fmt.Errorf("bundle: %w", err)
	}
	for _, slug := range seedBundle.Items {
		if _, ok := seen[slug]; !ok {
			return fmt.Errorf("bundle references unknown product %q", slug)
		}
	}

	return nil
}
