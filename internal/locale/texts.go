package locale

var texts = map[string]map[string]string{
	"ko": {
		// Title
		"game_title":    "SpinBall",
		"mode_classic":  "클래식",
		"mode_survival": "서바이벌",
		"menu_start":    "게임시작",
		"menu_settings": "게임 설정",
		"menu_ranking":  "랭킹",
		"menu_quit":     "게임 종료",
		"press_enter":   "Enter: 시작",
		"menu_hint":     "↑/↓ 이동, Enter: 선택, ←/→ 모드",

		// Play
		"score":        "점수",
		"high_score":   "최고기록",
		"round":        "라운드",
		"balls":        "공",
		"combo":        "콤보",
		"paused":       "일시정지",
		"pause_hint":   "P: 계속하기",
		"game_over":    "게임 오버",
		"restart_hint": "R키: 재시작, ESC: 타이틀",
		"aim_hint":     "←/→ 조준, Space 발사",
		"too_small":    "창이 너무 작습니다",

		// Shop
		"shop_title":      "파워업 상점",
		"shop_credits":    "보유 점수",
		"shop_hint":       "1-4: 구매, Enter: 다음 라운드",
		"shop_owned":      "보유중",
		"shop_no_score":   "점수가 부족합니다",
		"shop_bought":     "구매 완료",
		"double_damage":   "더블 데미지",
		"double_speed":    "더블 스피드",
		"clear_last_ball": "마지막 공 클리어",
		"clear_board":     "보드 클리어",

		// Name entry
		"enter_name":  "이름을 입력하세요",
		"score_saved": "기록 저장됨",
		"not_saved":   "저장되지 않음",
		"name_hint":   "Enter: 저장, ESC: 건너뛰기",
		"name_empty":  "이름을 비워둘 수 없습니다",

		// Settings
		"settings_title": "게임 설정",
		"ball_speed":     "공 속도",
		"sound":          "사운드",
		"difficulty":     "난이도",
		"language":       "언어",
		"sound_on":       "켜짐",
		"sound_off":      "꺼짐",
		"back_to_title":  "ESC: 타이틀로 돌아가기",
		"settings_hint":  "↑/↓ 선택, ←/→ 변경, Enter: 저장",
		"settings_saved": "설정 저장됨",
		"settings_temp":  "설정은 이번 실행에만 적용됩니다",
		"korean":         "한국어",
		"english":        "English",

		// Ranking
		"ranking_title": "랭킹",
		"rank":          "순위",
		"name":          "이름",
		"date":          "날짜",
		"no_scores":     "기록이 없습니다",
		"ranking_hint":  "Tab: 모드 변경, ESC: 돌아가기",
		"games_played":  "플레이 수",
		"avg_score":     "평균 점수",
		"best_round":    "최고 라운드",

		// Controls
		"controls_title":   "조작법",
		"control_aim":      "마우스나 ←/→ 키로 발사 각도를 조정하세요",
		"control_shoot":    "클릭이나 Space로 공을 발사하세요",
		"control_blocks":   "블록의 숫자만큼 공이 맞아야 블록이 사라집니다",
		"control_gameover": "블록이 바닥에 닿으면 게임 오버!",
		"control_rounds":   "라운드가 지날수록 공의 개수가 늘어납니다",

		"easy":   "쉬움",
		"normal": "보통",
		"hard":   "어려움",
		"fixed":  "고정",
	},

	"en": {
		"game_title":    "SpinBall",
		"mode_classic":  "Classic",
		"mode_survival": "Survival",
		"menu_start":    "Start Game",
		"menu_settings": "Settings",
		"menu_ranking":  "Ranking",
		"menu_quit":     "Quit Game",
		"press_enter":   "Enter: Start",
		"menu_hint":     "Up/Down move, Enter select, Left/Right mode",

		"score":        "Score",
		"high_score":   "Best",
		"round":        "Round",
		"balls":        "Balls",
		"combo":        "Combo",
		"paused":       "Paused",
		"pause_hint":   "P: Resume",
		"game_over":    "Game Over",
		"restart_hint": "R: Restart, ESC: Title",
		"aim_hint":     "Left/Right aim, Space shoot",
		"too_small":    "Window too small",

		"shop_title":      "Power-up Shop",
		"shop_credits":    "Credits",
		"shop_hint":       "1-4: Buy, Enter: Next round",
		"shop_owned":      "Owned",
		"shop_no_score":   "Not enough score",
		"shop_bought":     "Purchased",
		"double_damage":   "Double Damage",
		"double_speed":    "Double Speed",
		"clear_last_ball": "Clear on Last Ball",
		"clear_board":     "Clear Board",

		"enter_name":  "Enter your name",
		"score_saved": "Score saved",
		"not_saved":   "Not saved",
		"name_hint":   "Enter: Save, ESC: Skip",
		"name_empty":  "Name cannot be empty",

		"settings_title": "Game Settings",
		"ball_speed":     "Ball Speed",
		"sound":          "Sound",
		"difficulty":     "Difficulty",
		"language":       "Language",
		"sound_on":       "On",
		"sound_off":      "Off",
		"back_to_title":  "ESC: Back to Title",
		"settings_hint":  "Up/Down select, Left/Right change, Enter: Save",
		"settings_saved": "Settings saved",
		"settings_temp":  "Settings apply to this run only",
		"korean":         "한국어",
		"english":        "English",

		"ranking_title": "Ranking",
		"rank":          "Rank",
		"name":          "Name",
		"date":          "Date",
		"no_scores":     "No scores yet",
		"ranking_hint":  "Tab: Switch mode, ESC: Back",
		"games_played":  "Games",
		"avg_score":     "Average",
		"best_round":    "Best round",

		"controls_title":   "Controls",
		"control_aim":      "Move the mouse or press Left/Right to aim",
		"control_shoot":    "Click or press Space to shoot",
		"control_blocks":   "Hit blocks equal to their number to destroy",
		"control_gameover": "Game over if blocks reach bottom!",
		"control_rounds":   "More balls each round",

		"easy":   "Easy",
		"normal": "Normal",
		"hard":   "Hard",
		"fixed":  "Fixed",
	},
}
