package mobile

import "github.com/decker502/birdquest/pkg/app"

// mobileRoundSeconds 触屏设备每局时长
const mobileRoundSeconds = 20

// AppConfig 移动端启动配置
//
// 移动端固定输出日志，时长比桌面版略长，跳过开始页直接进入一局
func AppConfig() app.Config {
	return app.Config{
		Verbose:         true,
		DurationSeconds: mobileRoundSeconds,
		SkipStartScene:  true,
	}
}
