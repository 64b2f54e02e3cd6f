package scenes

// SceneChanger is implemented by the game to swap the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
