package blogpostService

import (
	"io"
	"mime/multipart"
	"sort"
	"strings"
	"sync"

	"blogapp-be/internal/api/blogpost"
	blogpostRepository "blogapp-be/internal/api/blogpost/repository"
	"blogapp-be/internal/entity"
	"blogapp-be/pkg/utils"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/net/context"
)

type memBlogPosts struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]entity.BlogPost
}

func newMemBlogPosts() *memBlogPosts {
	return &memBlogPosts{posts: make(map[primitive.ObjectID]entity.BlogPost)}
}

func (m *memBlogPosts) CreateBlogPost(_ context.Context, post entity.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[post.ID] = post
	return nil
}

func (m *memBlogPosts) GetBlogPostByID(_ context.Context, id primitive.ObjectID) (entity.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[id]
	if !ok {
		return entity.BlogPost{}, blogpost.ErrPostNotFound
	}
	return post, nil
}

func (m *memBlogPosts) GetAllBlogPosts(_ context.Context, titleFilter string) ([]entity.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	posts := make([]entity.BlogPost, 0, len(m.posts))
	for _, post := range m.posts {
		if titleFilter != "" && !strings.Contains(strings.ToLower(post.Title), strings.ToLower(titleFilter)) {
			continue
		}
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts, nil
}

func (m *memBlogPosts) ReplaceBlogPost(_ context.Context, post entity.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[post.ID]; !ok {
		return blogpost.ErrPostNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *memBlogPosts) DeleteBlogPost(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[id]; !ok {
		return blogpost.ErrPostNotFound
	}
	delete(m.posts, id)
	return nil
}

type memRepo struct {
	blogPosts *memBlogPosts
}

func (r *memRepo) NewClient() (blogpostRepository.Client, error) {
	return blogpostRepository.Client{BlogPosts: r.blogPosts}, nil
}

// flakyBlogPosts injects write failures while delegating everything else to
// the in-memory store.
type flakyBlogPosts struct {
	*memBlogPosts
	replaceErr error
	deleteErr  error
}

func (f *flakyBlogPosts) ReplaceBlogPost(c context.Context, post entity.BlogPost) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	return f.memBlogPosts.ReplaceBlogPost(c, post)
}

func (f *flakyBlogPosts) DeleteBlogPost(c context.Context, id primitive.ObjectID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.memBlogPosts.DeleteBlogPost(c, id)
}

type flakyRepo struct {
	blogPosts *flakyBlogPosts
}

func (r *flakyRepo) NewClient() (blogpostRepository.Client, error) {
	return blogpostRepository.Client{BlogPosts: r.blogPosts}, nil
}

func newFlakyService(flaky *flakyBlogPosts) IBlogPostService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return New(logger, &flakyRepo{blogPosts: flaky}, &mockS3{}, nil, utils.New())
}

type mockS3 struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (s *mockS3) UploadFile(file *multipart.FileHeader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	url := "https://bucket.s3.amazonaws.com/" + file.Filename
	s.uploaded = append(s.uploaded, url)
	return url, nil
}

func (s *mockS3) DeleteFile(fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, fileURL)
	return nil
}

func newTestService() (IBlogPostService, *memBlogPosts, *mockS3) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := newMemBlogPosts()
	s3Client := &mockS3{}

	svc := New(logger, &memRepo{blogPosts: store}, s3Client, nil, utils.New())
	return svc, store, s3Client
}
