package service

import (
	"vitalfit/wellness-app/internal/domain"
)

// SamplePosts returns the fixed illustrative feed shown when neither the
// primary store nor the fallback function yields any posts. Content is
// static; callers surface a degraded-data warning alongside it.
func SamplePosts() []domain.Post {
	return []domain.Post{
		{
			ID: "1",
			Author: domain.Author{
				Name:     "Emma Watson",
				Username: "emma_fit",
				Avatar:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			},
			Content:    "Just completed my first 5K run! So proud of this milestone. What started as a personal challenge has become a passion. Anyone else training for a race soon?",
			Image:      "https://images.unsplash.com/photo-1593352216923-dd286c555f84?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Likes:      42,
			Comments:   8,
			TimePosted: "2 hours ago",
		},
		{
			ID: "2",
			Author: domain.Author{
				Name:     "Michael Johnson",
				Username: "mike_fitness",
				Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			},
			Content:    "Here's my meal prep for the week! High protein, balanced carbs, and healthy fats. Consistency is key to reaching your nutrition goals. What's your favorite meal prep recipe?",
			Image:      "https://images.unsplash.com/photo-1547496502-affa22d38842?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Likes:      78,
			Comments:   16,
			TimePosted: "5 hours ago",
			LikedByMe:  true,
		},
		{
			ID: "3",
			Author: domain.Author{
				Name:     "Sarah Lee",
				Username: "sarah_yoga",
				Avatar:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			},
			Content:    "Finding inner peace through yoga. After 30 days of daily practice, I've noticed significant improvements in my flexibility and mental clarity. Meditation and mindfulness are truly transformative!",
			Likes:      53,
			Comments:   7,
			TimePosted: "1 day ago",
		},
		{
			ID: "4",
			Author: domain.Author{
				Name:     "David Chen",
				Username: "david_chen",
				Avatar:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			},
			Content:    "Hit a new PR today - 225lbs bench press! Been working toward this goal for months. Consistency and proper form really paid off. What fitness milestones are you working towards?",
			Image:      "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Likes:      91,
			Comments:   14,
			TimePosted: "3 hours ago",
		},
		{
			ID: "5",
			Author: domain.Author{
				Name:     "Jessica Martinez",
				Username: "jess_fit",
				Avatar:   "https://images.unsplash.com/photo-1531123897727-8f129e1688ce?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			},
			Content:    "Just finished this amazing HIIT workout and I'm feeling energized! Mixing cardio with strength training has been a game-changer for my fitness journey. 30 minutes a day is all you need! Who else loves quick, intense workouts?",
			Likes:      64,
			Comments:   12,
			TimePosted: "7 hours ago",
		},
		{
			ID: "6",
			Author: domain.Author{
				Name:     "Robert Williams",
				Username: "rwilliams_coach",
				Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			},
			Content:    "Reminder: Rest days are just as important as workout days! Recovery allows your muscles to repair and grow stronger. What's your favorite way to recover after intense training?",
			Image:      "https://images.unsplash.com/photo-1620371350502-999e9a7d80a4?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Likes:      118,
			Comments:   23,
			TimePosted: "1 day ago",
		},
		{
			ID: "7",
			Author: domain.Author{
				Name:     "Aisha Johnson",
				Username: "aisha_j",
				Avatar:   "https://images.unsplash.com/photo-1589571894960-20bbe2828d0a?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			},
			Content:    "Tried cooking with protein powder for the first time today - made these delicious protein pancakes! 20g protein per serving and they taste amazing with fresh berries. Recipe in the comments!",
			Image:      "https://images.unsplash.com/photo-1565299507177-b0ac66763828?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Likes:      82,
			Comments:   31,
			TimePosted: "12 hours ago",
		},
		{
			ID: "8",
			Author: domain.Author{
				Name:     "Tyler Brooks",
				Username: "tyler_lifts",
				Avatar:   "https://images.unsplash.com/photo-1607990281513-2c110a25bd8c?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			},
			Content:    "Home gym setup complete! Finally got the power rack delivered. You don't need a fancy gym membership to get results - just commitment and the right equipment. Total investment: $1200, but worth every penny for the convenience.",
			Image:      "https://images.unsplash.com/photo-1540497077202-7c8a3999166f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Likes:      105,
			Comments:   18,
			TimePosted: "2 days ago",
		},
	}
}
