package blog_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/archlab/patterns/infra/database"
	infrarepo "github.com/archlab/patterns/infra/repository"
	"github.com/archlab/patterns/webapi/blog"
	"github.com/archlab/patterns/webapi/testutil"
)

type BlogSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *BlogSuite) SetupTest() {
	db, err := database.Open(filepath.Join(s.T().TempDir(), "posts.db"))
	s.Require().NoError(err)
	s.Require().NoError(infrarepo.MigrateBlog(db))
	s.app = blog.NewApp(infrarepo.NewPostRepository(db))
}

func TestBlogSuite(t *testing.T) {
	suite.Run(t, new(BlogSuite))
}

func (s *BlogSuite) createPost(title, content string) float64 {
	resp := testutil.MakeRequest(s.T(), s.app, "POST", "/posts",
		fmt.Sprintf(`{"title":%q,"content":%q}`, title, content))
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	id, ok := testutil.DecodeData(s.T(), resp)["id"].(float64)
	s.Require().True(ok)
	return id
}

func (s *BlogSuite) TestCrud() {
	id := s.createPost("Hello", "First post")

	resp := testutil.MakeRequest(s.T(), s.app, "GET", fmt.Sprintf("/posts/%.0f", id), "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	data := testutil.DecodeData(s.T(), resp)
	s.Assert().Equal("Hello", data["title"])
	s.Assert().Equal("First post", data["content"])

	resp = testutil.MakeRequest(s.T(), s.app, "PUT", fmt.Sprintf("/posts/%.0f", id),
		`{"title":"Updated","content":"Edited"}`)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	resp = testutil.MakeRequest(s.T(), s.app, "GET", fmt.Sprintf("/posts/%.0f", id), "")
	s.Assert().Equal("Updated", testutil.DecodeData(s.T(), resp)["title"])

	resp = testutil.MakeRequest(s.T(), s.app, "DELETE", fmt.Sprintf("/posts/%.0f", id), "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	resp = testutil.MakeRequest(s.T(), s.app, "GET", fmt.Sprintf("/posts/%.0f", id), "")
	s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *BlogSuite) TestList() {
	s.createPost("one", "a")
	s.createPost("two", "b")

	resp := testutil.MakeRequest(s.T(), s.app, "GET", "/posts", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Assert().Len(testutil.DecodeList(s.T(), resp), 2)
}

func (s *BlogSuite) TestMissingPost() {
	s.Run("get", func() {
		resp := testutil.MakeRequest(s.T(), s.app, "GET", "/posts/999", "")
		s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
	})
	s.Run("update", func() {
		resp := testutil.MakeRequest(s.T(), s.app, "PUT", "/posts/999",
			`{"title":"x","content":"y"}`)
		s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
	})
	s.Run("delete", func() {
		resp := testutil.MakeRequest(s.T(), s.app, "DELETE", "/posts/999", "")
		s.Assert().Equal(fiber.StatusNotFound, resp.StatusCode)
	})
}

func (s *BlogSuite) TestValidation() {
	resp := testutil.MakeRequest(s.T(), s.app, "POST", "/posts", `{"title":"only title"}`)
	s.Assert().Equal(fiber.StatusBadRequest, resp.StatusCode)
}
