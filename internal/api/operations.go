package api

// storySummaryFields selects the fields of model.StorySummary.
const storySummaryFields = `
fragment StorySummaryFields on Story {
  id
  title
  summary
  bookmarkId
}
`

const allStoriesQuery = `
query AllStories {
  stories {
    ...StorySummaryFields
  }
}
` + storySummaryFields

const allBookmarksQuery = `
query AllBookmarks {
  bookmarks {
    id
    story {
      ...StorySummaryFields
    }
  }
}
` + storySummaryFields

const storyByIDQuery = `
query StoryById($id: ID!) {
  story(id: $id) {
    ...StorySummaryFields
    text
    author
  }
}
` + storySummaryFields

const addBookmarkMutation = `
mutation AddBookmark($storyId: ID!) {
  addBookmark(storyId: $storyId) {
    id
    story {
      ...StorySummaryFields
    }
  }
}
` + storySummaryFields

const removeBookmarkMutation = `
mutation RemoveBookmark($bookmarkId: ID!) {
  removeBookmark(bookmarkId: $bookmarkId)
}
`
