package seed

import (
	"context"
	"fmt"

	"newswire/internal/adapter/out/storage"
	"newswire/internal/model"
	"newswire/internal/service"
	"newswire/pkg/logger"

	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
)

// samplePosts covers each category the creation form suggests.
var samplePosts = []model.Post{
	{
		Title:    "What AI Will Look Like Next Year",
		Summary:  "Artificial intelligence is advancing quickly. Here is what experts expect to change.",
		Content:  "Artificial intelligence is advancing quickly, and experts expect major breakthroughs in generative models and autonomous agents.\nIntegration into daily life will get smoother, touching healthcare, finance and beyond.",
		Category: "Technology",
		ImageURL: "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title:    "Global Markets Rally as Inflation Cools",
		Summary:  "Stock markets hit record highs this week on encouraging economic data.",
		Content:  "Stock markets hit record highs this week on encouraging economic data.\nInvestors are optimistic about the central bank's next move, with major indexes led by technology stocks.",
		Category: "Business",
		ImageURL: "https://images.unsplash.com/photo-1611974765270-ca12586343bb?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title:    "New Planet Found in the Habitable Zone",
		Summary:  "Astronomers spotted a potentially Earth-like world forty light-years away.",
		Content:  "Astronomers spotted a potentially Earth-like world forty light-years away.\nThe planet orbits a red dwarf at a distance where liquid water could persist; follow-up observations are planned.",
		Category: "Science",
		ImageURL: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title:    "Five Tips for Better Sleep Tonight",
		Summary:  "Struggling to sleep well? These science-backed habits can help.",
		Content:  "Struggling to sleep well? These science-backed habits can help.\n1. Keep a regular schedule. 2. Make the room comfortable. 3. Limit screens before bed. 4. Watch what you eat and drink. 5. Stay physically active.",
		Category: "Health",
		ImageURL: "https://images.unsplash.com/photo-1541781777621-794453259724?auto=format&fit=crop&q=80&w=800",
	},
	{
		Title:    "The Movies Everyone Is Waiting For This Summer",
		Summary:  "Grab the popcorn: the season's most anticipated releases are almost here.",
		Content:  "Grab the popcorn: the season's most anticipated releases are almost here.\nFrom superhero blockbusters to heartfelt animation, there is something for everyone in theaters this summer.",
		Category: "Entertainment",
		ImageURL: "https://images.unsplash.com/photo-1536440136628-849c177e76a1?auto=format&fit=crop&q=80&w=800",
	},
}

// Run inserts the sample posts unless the store already has content. All
// inserts share one transaction, so a partially seeded table cannot happen.
func Run(ctx context.Context, st service.PostStorage, trManager *manager.Manager) error {
	log := logger.FromContext(ctx)

	existing, err := st.ListPosts(ctx, storage.ListPostsFilter{})
	if err != nil {
		return fmt.Errorf("check existing posts: %w", err)
	}
	if len(existing) > 0 {
		log.Info("seed skipped, posts already present", "count", len(existing))
		return nil
	}

	err = trManager.Do(ctx, func(ctx context.Context) error {
		for _, p := range samplePosts {
			if _, err := st.CreatePost(ctx, p); err != nil {
				return fmt.Errorf("create %q: %w", p.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("database seeded", "posts", len(samplePosts))
	return nil
}
