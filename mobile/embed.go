//go:build mobile

package mobile

import "embed"

// dataFS 移动端内嵌资源，构建前先 cp -r data mobile/
//
//go:embed data/fireworks.yaml data/resources.yaml data/sounds
var dataFS embed.FS
