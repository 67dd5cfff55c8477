package dto

type CreateFolderRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

type RenameRequest struct {
	Name string `json:"name"`
}
