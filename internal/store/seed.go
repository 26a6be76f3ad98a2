package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hy4k/fets.space/internal/models"
)

// SeedProjects returns the demo catalog used when the record store is empty
// or unreachable. IDs of first-party apps carry the "fets" prefix, which the
// FETS Apps category filters on.
func SeedProjects() []models.Project {
	now := time.Now()
	return []models.Project{
		{
			ID:          "fets-space",
			Name:        "FETS SPACE",
			Description: "Centralized command center for Forun Educational & Testing Services. Manage exam schedules, client resources, and developer tools.",
			Status:      models.StatusCompleted,
			WebsiteURL:  "https://fets.hub",
			RepoURL:     "https://github.com/forun/fets-space",
			ImageURL:    "https://images.unsplash.com/photo-1497215728101-856f4ea42174?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"React", "Vite", "Tailwind CSS"},
			Files:       "src/\n  components/\n    Dashboard.tsx\n    ResourceView.tsx",
			ItemType:    models.ItemApp,
			CreatedAt:   now,
			GitState: &models.GitState{
				RemoteURL: "https://github.com/forun/fets-space.git",
				Branch:    "main",
				Commits:   mockCommits(5, now),
				LastSync:  now,
				Status:    models.SyncClean,
			},
		},
		{
			ID:          "fets-live",
			Name:        "fets.live",
			Description: "Real-time proctoring and educational streaming platform. Delivers secure, low-latency video feeds for remote exam monitoring.",
			Status:      models.StatusInProgress,
			WebsiteURL:  "https://fets.live",
			ImageURL:    "https://images.unsplash.com/photo-1531482615713-2afd69097998?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"WebRTC", "Node.js", "Socket.io"},
			Files:       "server/\n  signaling.ts\nclient/\n  ProctorView.tsx",
			ItemType:    models.ItemApp,
			CreatedAt:   now.Add(-1000 * time.Second),
			GitState: &models.GitState{
				RemoteURL:      "https://github.com/forun/fets-live.git",
				Branch:         "dev",
				Commits:        mockCommits(3, now),
				LastSync:       now.Add(-time.Hour),
				Status:         models.SyncAhead,
				PendingChanges: 2,
			},
		},
		{
			ID:          "fets-team",
			Name:        "fets.team",
			Description: "Internal collaboration and HR portal for Forun staff, proctors, and administrators. Manage shifts, payroll, and compliance.",
			Status:      models.StatusCompleted,
			WebsiteURL:  "https://fets.team",
			ImageURL:    "https://images.unsplash.com/photo-1600880292203-757bb62b4baf?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"Next.js", "PostgreSQL", "Prisma"},
			Files:       "pages/\n  roster.tsx\n  payroll.tsx",
			ItemType:    models.ItemApp,
			CreatedAt:   now.Add(-2000 * time.Second),
		},
		{
			ID:          "fets-cloud",
			Name:        "fets.cloud",
			Description: "Scalable cloud infrastructure dashboard managing exam delivery instances and secure record storage.",
			Status:      models.StatusCompleted,
			WebsiteURL:  "https://fets.cloud",
			ImageURL:    "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"AWS", "Docker", "Kubernetes"},
			Files:       "infra/\n  terraform/\n    main.tf\n  k8s/\n    deployment.yaml",
			ItemType:    models.ItemApp,
			CreatedAt:   now.Add(-3000 * time.Second),
			GitState: &models.GitState{
				RemoteURL: "https://github.com/forun/fets-cloud.git",
				Branch:    "main",
				Commits:   mockCommits(12, now),
				LastSync:  now.Add(-100 * time.Second),
				Status:    models.SyncClean,
			},
		},
		{
			ID:          "fets-cash",
			Name:        "fets.cash",
			Description: "Secure payment gateway and financial transaction management system for examination fees and booking settlements.",
			Status:      models.StatusInProgress,
			WebsiteURL:  "https://fets.cash",
			ImageURL:    "https://images.unsplash.com/photo-1556742049-0cfed4f7a07d?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"Stripe API", "Express", "React"},
			Files:       "api/\n  payments.ts\n  webhooks.ts",
			ItemType:    models.ItemApp,
			CreatedAt:   now.Add(-4000 * time.Second),
		},
		{
			ID:          "fets-in",
			Name:        "fets.in",
			Description: "Regional gateway for Indian operations. Handles localized exam scheduling, payment processing via Razorpay, and regional compliance reporting.",
			Status:      models.StatusCompleted,
			WebsiteURL:  "https://fets.in",
			RepoURL:     "https://github.com/forun/fets-in",
			ImageURL:    "https://images.unsplash.com/photo-1524492412937-b28074a5d7da?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"Next.js", "Razorpay", "Tailwind"},
			Files:       "pages/\n  index.tsx\n  compliance.tsx",
			ItemType:    models.ItemApp,
			CreatedAt:   now.Add(-4500 * time.Second),
			GitState: &models.GitState{
				RemoteURL: "https://github.com/forun/fets-in.git",
				Branch:    "main",
				Commits:   mockCommits(8, now),
				LastSync:  now.Add(-120 * time.Second),
				Status:    models.SyncClean,
			},
		},
		{
			ID:          "fetscore-in",
			Name:        "fetscore.in",
			Description: "Centralized scoring engine and result processing core. Provides low-latency API endpoints for real-time grade calculation.",
			Status:      models.StatusInProgress,
			WebsiteURL:  "https://fetscore.in",
			RepoURL:     "https://github.com/forun/fetscore",
			ImageURL:    "https://images.unsplash.com/photo-1558494949-ef526b01201b?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"Rust", "GraphQL", "PostgreSQL"},
			Files:       "src/\n  engine/\n    calculator.rs",
			ItemType:    models.ItemApp,
			CreatedAt:   now.Add(-4800 * time.Second),
			GitState: &models.GitState{
				RemoteURL:      "https://github.com/forun/fetscore.git",
				Branch:         "dev",
				Commits:        mockCommits(2, now),
				LastSync:       now.Add(-500 * time.Second),
				Status:         models.SyncAhead,
				PendingChanges: 1,
			},
		},
		{
			ID:          "prometric-portal",
			Name:        "Prometric Portal",
			Description: "Candidate scheduling and result management for Prometric exams.",
			Status:      models.StatusCompleted,
			WebsiteURL:  "https://www.prometric.com",
			ImageURL:    "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"External", "Portal"},
			Files:       "N/A - External Link",
			ItemType:    models.ItemApp,
			CreatedAt:   now.Add(-5000 * time.Second),
		},
		{
			ID:          "pearson-portal",
			Name:        "Pearson VUE Navigator",
			Description: "Access to Pearson VUE testing systems for administrators and test centers.",
			Status:      models.StatusCompleted,
			WebsiteURL:  "https://home.pearsonvue.com",
			ImageURL:    "https://images.unsplash.com/photo-1517048676732-d65bc937f952?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"External", "Portal"},
			Files:       "N/A - External Link",
			ItemType:    models.ItemApp,
			CreatedAt:   now.Add(-6000 * time.Second),
		},
		{
			ID:          "psi-portal",
			Name:        "PSI Atlas",
			Description: "PSI licensure and certification exam delivery platform.",
			Status:      models.StatusCompleted,
			WebsiteURL:  "https://www.psiexams.com",
			ImageURL:    "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"External", "Portal"},
			Files:       "N/A - External Link",
			ItemType:    models.ItemApp,
			CreatedAt:   now.Add(-7000 * time.Second),
		},
		{
			ID:          "cert-cma",
			Name:        "CMA USA Handbook",
			Description: "Certified Management Accountant (CMA) exam content outlines and candidate rules.",
			Status:      models.StatusCompleted,
			ImageURL:    "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"PDF", "Prometric", "Finance"},
			Files:       "docs/\n  CMA_Handbook_2025.pdf",
			ItemType:    models.ItemFile,
			CreatedAt:   now.Add(-100 * time.Second),
		},
		{
			ID:          "cert-ms",
			Name:        "Microsoft Cert Guidelines",
			Description: "Role-based certification paths for Azure, Microsoft 365, and Dynamics.",
			Status:      models.StatusCompleted,
			ImageURL:    "https://images.unsplash.com/photo-1633419461186-7d75fc07612d?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"PDF", "Pearson VUE", "IT"},
			Files:       "docs/\n  MS_Cert_Path_2025.pdf",
			ItemType:    models.ItemFile,
			CreatedAt:   now.Add(-200 * time.Second),
		},
		{
			ID:          "cert-rcs",
			Name:        "RCS England Protocols",
			Description: "Royal College of Surgeons exam delivery standards and surgical assessment criteria.",
			Status:      models.StatusCompleted,
			ImageURL:    "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"PDF", "Pearson VUE", "Medical"},
			Files:       "docs/\n  RCS_Exam_Regulations.pdf",
			ItemType:    models.ItemFile,
			CreatedAt:   now.Add(-300 * time.Second),
		},
		{
			ID:          "cert-aws",
			Name:        "AWS Security Standards",
			Description: "Compliance requirements for hosting AWS certification exams via fets.cloud.",
			Status:      models.StatusCompleted,
			ImageURL:    "https://images.unsplash.com/photo-1523580494863-6f3031224c94?auto=format&fit=crop&w=1600&q=80",
			TechStack:   []string{"PDF", "AWS", "Security"},
			Files:       "docs/\n  AWS_Facility_Reqs.pdf",
			ItemType:    models.ItemFile,
			CreatedAt:   now.Add(-400 * time.Second),
		},
	}
}

// StaffUsers is the built-in roster. Role is selected, not authenticated.
func StaffUsers() []models.User {
	return []models.User{
		{
			ID:        "1",
			Name:      "System Administrator",
			Email:     "admin@fets.dev",
			Role:      models.RoleAdmin,
			AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Admin",
		},
		{
			ID:        "2",
			Name:      "Lead Proctor",
			Email:     "proctor@fets.dev",
			Role:      models.RoleDeveloper,
			AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Proctor",
		},
		{
			ID:        "3",
			Name:      "Center Manager",
			Email:     "manager@fets.dev",
			Role:      models.RoleEditor,
			AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Manager",
		},
	}
}

var mockMessages = []string{
	"Initial commit", "Update README.md", "Fix bug in login flow", "Refactor dashboard components",
	"Add unit tests", "Update dependencies", "Optimize build script", "Feature: Dark mode",
	"Fix typo in SOP", "Deploy to production",
}

var mockAuthors = []string{"Dev Team", "Admin", "System"}

func mockCommits(count int, now time.Time) []models.Commit {
	commits := make([]models.Commit, count)
	for i := range commits {
		commits[i] = models.Commit{
			ID:      fmt.Sprintf("cmt-%d-%d", now.UnixMilli(), i),
			Hash:    fmt.Sprintf("%08x", rand.Uint32()),
			Message: mockMessages[i%len(mockMessages)],
			Author:  mockAuthors[i%len(mockAuthors)],
			Date:    now.Add(-time.Duration(i) * 24 * time.Hour),
		}
	}
	return commits
}
