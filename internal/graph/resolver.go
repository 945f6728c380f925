// Package graph implements the resolver layer: one method per GraphQL field,
// composing validation, the authorization guard and the stores into the
// create/read/update/delete flows for users and posts.
package graph

import (
	"context"
	"strconv"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"blog/internal/apperr"
	"blog/internal/auth"
	"blog/internal/models"
	"blog/internal/validate"
)

// postsPerPage is the page size of getAllPosts.
const postsPerPage = 2

// UserStore is the persistence collaborator for users. Lookups return
// (nil, nil) when the user does not exist.
type UserStore interface {
	Create(ctx context.Context, email, name, passwordHash string) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id int64) (*models.User, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// PostStore is the persistence collaborator for posts. Create and Delete keep
// the owner's post list consistent with the posts themselves.
type PostStore interface {
	Create(ctx context.Context, p *models.Post) (*models.Post, error)
	ByID(ctx context.Context, id int64) (*models.Post, error)
	ByIDWithCreator(ctx context.Context, id int64) (*models.Post, error)
	Page(ctx context.Context, limit, offset int) ([]*models.Post, error)
	Count(ctx context.Context) (int, error)
	ByCreator(ctx context.Context, userID int64) ([]*models.Post, error)
	Update(ctx context.Context, p *models.Post) (*models.Post, error)
	Delete(ctx context.Context, id, creatorID int64) error
}

// TodoStore backs the todos query; the REST side shares the same store.
type TodoStore interface {
	All(ctx context.Context) ([]models.Todo, error)
}

// ImageClearer removes the file backing a stored image reference.
type ImageClearer interface {
	Clear(path string)
}

type Resolver struct {
	Users    UserStore
	Posts    PostStore
	TodoList TodoStore
	Tokens   *auth.Issuer
	Images   ImageClearer
}

// ---- payload types (field-resolved) ----

type User struct {
	ID       graphql.ID
	Name     string
	Email    string
	Password *string // never populated; present for schema compatibility
	Status   string
	Posts    []*Post
}

type Post struct {
	ID        graphql.ID
	Title     string
	Content   string
	ImageURL  string
	Creator   *User
	CreatedAt string
	UpdatedAt string
}

type Todo struct {
	ID     graphql.ID
	Name   string
	Status bool
}

type AuthData struct {
	Token  string
	UserID graphql.ID
}

type PostsData struct {
	Posts []*Post
	Total int32
}

type UserInputData struct {
	Email    string
	Name     string
	Password string
}

type PostInputData struct {
	Title    string
	Content  string
	ImageURL *string
}

// ---- mutations ----

func (r *Resolver) CreateUser(ctx context.Context, args struct{ UserInput UserInputData }) (*User, error) {
	in := args.UserInput
	if errs := validate.UserInput(in.Email, in.Password); len(errs) > 0 {
		return nil, apperr.InvalidInput(errs)
	}

	existing, err := r.Users.ByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "User already exists!")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}

	created, err := r.Users.Create(ctx, in.Email, in.Name, hash)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	return shapeUser(created, nil), nil
}

func (r *Resolver) CreatePost(ctx context.Context, args struct{ PostInput PostInputData }) (*Post, error) {
	id, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	in := args.PostInput
	if errs := validate.PostInput(in.Title, in.Content); len(errs) > 0 {
		return nil, apperr.InvalidInput(errs)
	}

	creator, err := r.Users.ByID(ctx, id.UserID)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	if creator == nil {
		return nil, apperr.New(apperr.Unauthenticated, "Invalid user!")
	}

	p := &models.Post{
		Title:     in.Title,
		Content:   in.Content,
		CreatorID: creator.ID,
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	created, err := r.Posts.Create(ctx, p)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	return shapePost(created, shapeUser(creator, nil)), nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	PostID    graphql.ID
	PostInput PostInputData
}) (*Post, error) {
	id, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	postID, err := parseID(args.PostID)
	if err != nil {
		return nil, err
	}
	post, err := r.Posts.ByIDWithCreator(ctx, postID)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	if post == nil {
		return nil, apperr.New(apperr.NotFound, "No post found!")
	}
	if post.Creator.ID != id.UserID {
		return nil, apperr.New(apperr.Forbidden, "Not authorized!")
	}

	in := args.PostInput
	if errs := validate.PostInput(in.Title, in.Content); len(errs) > 0 {
		return nil, apperr.InvalidInput(errs)
	}

	post.Title = in.Title
	post.Content = in.Content
	// Multipart frontends send the literal string "undefined" when the image
	// was left unchanged.
	if in.ImageURL != nil && *in.ImageURL != "undefined" {
		post.ImageURL = *in.ImageURL
	}

	updated, err := r.Posts.Update(ctx, post)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	return shapePost(updated, shapeUser(post.Creator, nil)), nil
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ PostID graphql.ID }) (bool, error) {
	id, err := requireAuth(ctx)
	if err != nil {
		return false, err
	}

	postID, err := parseID(args.PostID)
	if err != nil {
		return false, err
	}
	post, err := r.Posts.ByID(ctx, postID)
	if err != nil {
		return false, apperr.Wrap(err, "Internal server error!")
	}
	if post == nil {
		return false, apperr.New(apperr.NotFound, "No post found!")
	}
	if post.CreatorID != id.UserID {
		return false, apperr.New(apperr.Forbidden, "Not authorized!")
	}

	// Fire and forget: a missing file must not block the delete.
	if r.Images != nil && post.ImageURL != "" {
		r.Images.Clear(post.ImageURL)
	}

	if err := r.Posts.Delete(ctx, post.ID, post.CreatorID); err != nil {
		return false, apperr.Wrap(err, "Internal server error!")
	}
	return true, nil
}

func (r *Resolver) UpdateStatus(ctx context.Context, args struct{ Status string }) (*User, error) {
	id, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	user, err := r.Users.ByID(ctx, id.UserID)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	if user == nil {
		return nil, apperr.New(apperr.NotFound, "No user found!")
	}

	if err := r.Users.UpdateStatus(ctx, user.ID, args.Status); err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	user.Status = args.Status
	return shapeUser(user, nil), nil
}

// ---- queries ----

func (r *Resolver) Login(ctx context.Context, args struct{ Email, Password string }) (*AuthData, error) {
	user, err := r.Users.ByEmail(ctx, args.Email)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	if user == nil {
		return nil, apperr.New(apperr.Unauthenticated, "User not found!")
	}
	if !auth.CheckPassword(args.Password, user.PasswordHash) {
		return nil, apperr.New(apperr.Unauthenticated, "Invalid password!")
	}

	token, err := r.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	return &AuthData{Token: token, UserID: formatID(user.ID)}, nil
}

func (r *Resolver) GetAllPosts(ctx context.Context, args struct{ Page *int32 }) (*PostsData, error) {
	if _, err := requireAuth(ctx); err != nil {
		return nil, err
	}

	page := 1
	if args.Page != nil && *args.Page > 0 {
		page = int(*args.Page)
	}

	posts, err := r.Posts.Page(ctx, postsPerPage, (page-1)*postsPerPage)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	total, err := r.Posts.Count(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	if len(posts) == 0 {
		return nil, apperr.New(apperr.NotFound, "No posts!")
	}

	shaped := make([]*Post, 0, len(posts))
	creators := map[int64]*User{}
	for _, p := range posts {
		creator, ok := creators[p.CreatorID]
		if !ok {
			u, err := r.Users.ByID(ctx, p.CreatorID)
			if err != nil {
				return nil, apperr.Wrap(err, "Internal server error!")
			}
			if u == nil {
				return nil, apperr.New(apperr.NotFound, "No user found!")
			}
			creator = shapeUser(u, nil)
			creators[p.CreatorID] = creator
		}
		shaped = append(shaped, shapePost(p, creator))
	}
	return &PostsData{Posts: shaped, Total: int32(total)}, nil
}

func (r *Resolver) GetPost(ctx context.Context, args struct{ PostID *graphql.ID }) (*Post, error) {
	if _, err := requireAuth(ctx); err != nil {
		return nil, err
	}
	if args.PostID == nil || *args.PostID == "" {
		return nil, apperr.New(apperr.Invalid, "No post id provided!")
	}

	postID, err := parseID(*args.PostID)
	if err != nil {
		return nil, err
	}
	post, err := r.Posts.ByIDWithCreator(ctx, postID)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	if post == nil {
		return nil, apperr.New(apperr.NotFound, "No post found!")
	}
	return shapePost(post, shapeUser(post.Creator, nil)), nil
}

func (r *Resolver) User(ctx context.Context) (*User, error) {
	id, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	user, err := r.Users.ByID(ctx, id.UserID)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	if user == nil {
		return nil, apperr.New(apperr.NotFound, "No user found!")
	}

	posts, err := r.Posts.ByCreator(ctx, user.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error!")
	}
	me := shapeUser(user, nil)
	shaped := make([]*Post, 0, len(posts))
	for _, p := range posts {
		shaped = append(shaped, shapePost(p, me))
	}
	return shapeUser(user, shaped), nil
}

// Todos lists every todo item. Like the REST listing it is open to anonymous
// callers.
func (r *Resolver) Todos(ctx context.Context) ([]*Todo, error) {
	items, err := r.TodoList.All(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to fetch todos!")
	}
	out := make([]*Todo, 0, len(items))
	for _, t := range items {
		out = append(out, &Todo{ID: formatID(t.ID), Name: t.Name, Status: t.Status})
	}
	return out, nil
}

// ---- guard and shaping helpers ----

// requireAuth is the authentication check: it runs before any resource
// lookup in every protected operation.
func requireAuth(ctx context.Context) (auth.Identity, error) {
	id, ok := auth.IdentityFrom(ctx)
	if !ok {
		return auth.Identity{}, apperr.New(apperr.Unauthenticated, "Not authenticated!")
	}
	return id, nil
}

func parseID(id graphql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, apperr.New(apperr.NotFound, "No post found!")
	}
	return n, nil
}

func formatID(id int64) graphql.ID {
	return graphql.ID(strconv.FormatInt(id, 10))
}

func shapeUser(u *models.User, posts []*Post) *User {
	if posts == nil {
		posts = []*Post{}
	}
	return &User{
		ID:     formatID(u.ID),
		Name:   u.Name,
		Email:  u.Email,
		Status: u.Status,
		Posts:  posts,
	}
}

func shapePost(p *models.Post, creator *User) *Post {
	return &Post{
		ID:        formatID(p.ID),
		Title:     p.Title,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		Creator:   creator,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
