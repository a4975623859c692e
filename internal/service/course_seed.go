package service

import "interview_prep_backend/internal/model"

type courseSeed struct {
	course  model.Course
	lessons []model.Lesson
}

// seedCourses is the initial catalog, inserted the first time the course list
// is requested against an empty database.
func seedCourses() []courseSeed {
	return []courseSeed{
		{
			course: model.Course{
				Title:         "Data Structures & Algorithms",
				Description:   "Master fundamental data structures and algorithms for coding interviews",
				Category:      "Programming",
				Difficulty:    "Intermediate",
				TotalLessons:  3,
				DurationHours: 20,
				XPReward:      200,
			},
			lessons: []model.Lesson{
				{
					Title: "Arrays & Strings",
					Content: `# Arrays and Strings

Arrays are the most fundamental data structure. They store elements in contiguous memory locations.

## Key Concepts
- **Access**: O(1)
- **Search**: O(n)
- **Insertion/Deletion**: O(n)

## Common Techniques
1. **Two Pointers**: Used for searching pairs, reversing, etc.
2. **Sliding Window**: Used for subarray problems.`,
					DurationMinutes: 45,
					Position:        1,
					VideoURL:        "https://www.youtube.com/watch?v=juNzBpC2lXi",
				},
				{
					Title:           "Linked Lists",
					Content:         "Linked lists consist of nodes where each node contains data and a reference to the next node.",
					DurationMinutes: 60,
					Position:        2,
					VideoURL:        "https://www.youtube.com/watch?v=njTh_OwMljA",
				},
				{
					Title:           "Hash Maps",
					Content:         "Hash maps provide O(1) average time complexity for lookups.",
					DurationMinutes: 50,
					Position:        3,
					VideoURL:        "https://www.youtube.com/watch?v=c3RVW3KGIIE",
				},
			},
		},
		{
			course: model.Course{
				Title:         "System Design Fundamentals",
				Description:   "Learn to design scalable distributed systems",
				Category:      "System Design",
				Difficulty:    "Advanced",
				TotalLessons:  2,
				DurationHours: 15,
				XPReward:      250,
			},
			lessons: []model.Lesson{
				{
					Title:           "Scalability Basics",
					Content:         "Vertical vs Horizontal Scaling.",
					DurationMinutes: 40,
					Position:        1,
					VideoURL:        "https://www.youtube.com/watch?v=xpDnVSmNFX0",
				},
				{
					Title:           "Load Balancing",
					Content:         "Distributing traffic across multiple servers.",
					DurationMinutes: 55,
					Position:        2,
					VideoURL:        "https://www.youtube.com/watch?v=K0GskUdrWqQ",
				},
			},
		},
		{
			course: model.Course{
				Title:         "Behavioral Interview Mastery",
				Description:   "Ace behavioral interviews with STAR method",
				Category:      "Soft Skills",
				Difficulty:    "Beginner",
				TotalLessons:  3,
				DurationHours: 10,
				XPReward:      150,
			},
			lessons: []model.Lesson{
				{
					Title:           "The STAR Method",
					Content:         "Situation, Task, Action, Result.",
					DurationMinutes: 30,
					Position:        1,
					VideoURL:        "https://www.youtube.com/watch?v=WrlF66fM8F8",
				},
				{
					Title:           "Handling 'What is your weakness?'",
					Content:         "Turning negatives into positives.",
					DurationMinutes: 25,
					Position:        2,
					VideoURL:        "https://www.youtube.com/watch?v=26O-zFv11X4",
				},
				{
					Title:           "Questions to Ask the Interviewer",
					Content:         "Show genuine interest and insight.",
					DurationMinutes: 20,
					Position:        3,
					VideoURL:        "https://www.youtube.com/watch?v=lJ_9M5g0668",
				},
			},
		},
		{
			course: model.Course{
				Title:         "Python for Interviews",
				Description:   "Master Python for technical interviews",
				Category:      "Programming",
				Difficulty:    "Beginner",
				TotalLessons:  3,
				DurationHours: 25,
				XPReward:      180,
			},
			lessons: []model.Lesson{
				{
					Title:           "Python Lists & Slicing",
					Content:         "Powerful list manipulation techniques.",
					DurationMinutes: 45,
					Position:        1,
					VideoURL:        "https://www.youtube.com/watch?v=ohCDNzJeQqM",
				},
				{
					Title:           "Dictionaries & Sets",
					Content:         "Fast lookups and unique elements.",
					DurationMinutes: 50,
					Position:        2,
					VideoURL:        "https://www.youtube.com/watch?v=daefaLgNkw0",
				},
				{
					Title:           "Object Oriented Python",
					Content:         "Classes, methods, and inheritance.",
					DurationMinutes: 60,
					Position:        3,
					VideoURL:        "https://www.youtube.com/watch?v=JeznW_7DlB0",
				},
			},
		},
	}
}
